package sink

// PutCharFunc emits one character through a hardware primitive.
// It must not block, allocate or depend on locks held by the caller.
type PutCharFunc func(c byte)

// LowLevel writes one character at a time through a PutCharFunc
type LowLevel struct {
	putc PutCharFunc
}

// NewLowLevel binds a sink to putc, nil selects ConsolePutChar
func NewLowLevel(putc PutCharFunc) *LowLevel {
	if putc == nil {
		putc = ConsolePutChar
	}
	return &LowLevel{putc: putc}
}

// Write emits every byte of p, it cannot fail
func (l *LowLevel) Write(p []byte) (int, error) {
	for _, c := range p {
		l.putc(c)
	}
	return len(p), nil
}

// Kind returns KindLowLevel
func (l *LowLevel) Kind() Kind {
	return KindLowLevel
}
