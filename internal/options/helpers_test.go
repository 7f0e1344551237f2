package options

func str(s string) *string { return &s }

func num(n int) *int { return &n }

var (
	noVars    = MapVars{}
	xattrCaps = Capabilities{Xattr: true}
	plainCaps = Capabilities{}
)
