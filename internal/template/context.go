package template

// Context provides data for template rendering during project
// initialization. All fields are exported for use with text/template.
type Context struct {
	// Project
	ProjectName string
	ProjectRoot string

	// User
	UserName string

	// Meta
	Version       string // stackkit version
	Platform      string // "darwin", "linux", "windows"
	InitializedAt string // ISO 8601 timestamp when the project was initialized
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext creates a Context and applies the provided options.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets project-related fields.
func WithProject(name, root string) ContextOption {
	return func(c *Context) {
		c.ProjectName = name
		c.ProjectRoot = root
	}
}

// WithUser sets the user name.
func WithUser(name string) ContextOption {
	return func(c *Context) {
		c.UserName = name
	}
}

// WithVersion sets the stackkit version.
func WithVersion(version string) ContextOption {
	return func(c *Context) {
		c.Version = version
	}
}

// WithPlatform sets the target platform.
func WithPlatform(platform string) ContextOption {
	return func(c *Context) {
		c.Platform = platform
	}
}

// WithInitializedAt sets the initialization timestamp.
func WithInitializedAt(timestamp string) ContextOption {
	return func(c *Context) {
		c.InitializedAt = timestamp
	}
}
