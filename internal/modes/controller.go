package modes

// Controller tracks the active mode of one UI surface. It is owned by a
// single update loop and is not safe for concurrent use.
type Controller struct {
	current ID
}

// NewController returns a controller starting at initial, or at Default
// when initial is not a valid mode.
func NewController(initial ID) *Controller {
	if !initial.Valid() {
		initial = Default
	}
	return &Controller{current: initial}
}

// Mode returns the active mode.
func (c *Controller) Mode() ID {
	return c.current
}

// SetMode makes id the active mode. IDs outside the closed set are ignored
// so that CurrentConfig always describes Mode.
func (c *Controller) SetMode(id ID) {
	if !id.Valid() {
		return
	}
	c.current = id
}

// Config returns the configuration of id, regardless of the active mode.
func (c *Controller) Config(id ID) Config {
	return Lookup(id)
}

// CurrentConfig returns the configuration of the active mode.
func (c *Controller) CurrentConfig() Config {
	return Lookup(c.current)
}

// AllModes returns every mode in declaration order.
func (c *Controller) AllModes() []Config {
	return All()
}

// Next returns the mode after the active one, wrapping around. It does not
// change the active mode.
func (c *Controller) Next() ID {
	return (c.current + 1) % numModes
}

// Prev returns the mode before the active one, wrapping around. It does not
// change the active mode.
func (c *Controller) Prev() ID {
	return (c.current - 1 + numModes) % numModes
}
