package textdraw

// config collects construction inputs for a TextDrawable.
type config struct {
	resources  *Resources
	style      *Attrs
	appearance *Attrs
}

// Option configures TextDrawable construction.
type Option func(*config)

// WithResources sets the resource table used to resolve names in the
// style attributes. Defaults to DefaultResources.
func WithResources(res *Resources) Option {
	return func(c *config) {
		if res != nil {
			c.resources = res
		}
	}
}

// WithStyle sets the drawable's style attributes, using the Attr
// namespace. Style attributes override anything a referenced text
// appearance sets.
func WithStyle(style *Attrs) Option {
	return func(c *config) { c.style = style }
}

// WithAppearance sets a text appearance directly, using the Appearance
// namespace, bypassing named lookup. A style attribute referencing a
// named appearance takes precedence over this.
func WithAppearance(appearance *Attrs) Option {
	return func(c *config) { c.appearance = appearance }
}

func newConfig(opts []Option) *config {
	c := &config{resources: DefaultResources()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
