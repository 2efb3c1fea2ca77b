package site

// Overrides replaces selected fields of the default configuration. A nil
// field leaves the default untouched.
type Overrides struct {
	PictureDark  *string `yaml:"picture_dark"`
	PictureLight *string `yaml:"picture_light"`
	PictureAlt   *string `yaml:"picture_alt"`
	MeetingLink  *string `yaml:"meeting_link"`
	Email        *string `yaml:"email"`
	Available    *bool   `yaml:"available"`
	Credits      *string `yaml:"credits"`
}

// Empty reports whether no field is set.
func (o Overrides) Empty() bool {
	return o == Overrides{}
}

// Apply returns a copy of cfg with the set fields replaced.
func (o Overrides) Apply(cfg Config) Config {
	out := cfg.Clone()
	setString(&out.Global.Picture.Dark, o.PictureDark)
	setString(&out.Global.Picture.Light, o.PictureLight)
	setString(&out.Global.Picture.Alt, o.PictureAlt)
	setString(&out.Global.MeetingLink, o.MeetingLink)
	setString(&out.Global.Email, o.Email)
	setString(&out.Footer.Credits, o.Credits)
	if o.Available != nil {
		out.Global.Available = *o.Available
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
