package cache

// New returns an independent, empty store with zero counters and debug
// logging off unless an option says otherwise.
// @group Constructors
//
// Example: fresh store
//
//	s := cache.New()
//	fmt.Println(s.Size()) // 0
//
// Example: store with a mock clock
//
//	mock := clock.NewMock()
//	s = cache.New(cache.WithClock(mock), cache.WithDebug(true))
//	_ = s
func New(opts ...Option) *Store {
	var cfg Config
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a store built from cfg. Unset fields take defaults.
// @group Constructors
func NewWithConfig(cfg Config) *Store {
	return newStore(cfg)
}

var defaultStore = New()

// Default returns the process-wide store created at package load.
// Code that needs isolation should call New instead.
// @group Constructors
//
// Example: shared instance
//
//	_, _ = cache.Default().Put("greeting", "hello")
//	value, _ := cache.Default().Get("greeting")
//	fmt.Println(value) // hello
func Default() *Store {
	return defaultStore
}
