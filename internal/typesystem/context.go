package typesystem

// Context maps variable names to types. Bindings follow stack discipline:
// Bind returns a restore func which must run when the scope ends.
type Context struct {
	store map[string]Type
}

func NewContext() *Context {
	return &Context{store: make(map[string]Type)}
}

func (c *Context) Lookup(name string) (Type, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.store[name]
	return t, ok
}

// Bind installs name:t and returns a func that restores whatever binding
// name had before, including none. Call it with defer.
func (c *Context) Bind(name string, t Type) (restore func()) {
	prev, had := c.store[name]
	c.store[name] = t
	return func() {
		if had {
			c.store[name] = prev
		} else {
			delete(c.store, name)
		}
	}
}

func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.store)
}
