package nav

import "strings"

// Link is one entry of the main navigation menu.
type Link struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	To    string `json:"to"`
}

// Anchor returns the fragment of To without the leading '#'.
func (l Link) Anchor() string {
	_, frag, _ := strings.Cut(l.To, "#")
	return frag
}

var links = [...]Link{
	{Label: "Home", Icon: "i-lucide-home", To: "/#hero"},
	{Label: "About", Icon: "i-lucide-user", To: "/#about"},
	{Label: "Projects", Icon: "i-lucide-folder", To: "/#projects"},
	{Label: "Contact", Icon: "i-lucide-mail", To: "/#contact"},
}

// Links returns the menu in display order.
func Links() []Link {
	return append([]Link(nil), links[:]...)
}
