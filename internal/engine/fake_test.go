package engine

import (
	"errors"
	"fmt"
)

// fakeEngine returns canned results and records the arguments it was
// called with.
type fakeEngine struct {
	protocolText string
	rinchi       string
	rauxinfo     string
	key          string
	err          error

	gotReactants string
	gotProducts  string
	gotAgents    string
	gotKeyType   string
	calls        int
}

var _ Engine = (*fakeEngine)(nil)

func (f *fakeEngine) RInChIFromFileText(format, text string, forceEquilibrium bool) (string, string, error) {
	f.calls++
	return f.rinchi, f.rauxinfo, f.err
}

func (f *fakeEngine) KeyFromFileText(format, text, keyType string, forceEquilibrium bool) (string, error) {
	f.calls++
	f.gotKeyType = keyType
	return f.key, f.err
}

func (f *fakeEngine) FileTextFromRInChI(rinchi, rauxinfo, format string) (string, error) {
	f.calls++
	return "$RXN\n", f.err
}

func (f *fakeEngine) InChIsFromRInChI(rinchi, rauxinfo string) (string, error) {
	f.calls++
	return f.protocolText, f.err
}

func (f *fakeEngine) RInChIFromInChIs(reactants, products, agents string) (string, string, error) {
	f.calls++
	f.gotReactants, f.gotProducts, f.gotAgents = reactants, products, agents
	return f.rinchi, f.rauxinfo, f.err
}

func (f *fakeEngine) KeyFromRInChI(rinchi, keyType string) (string, error) {
	f.calls++
	f.gotKeyType = keyType
	return f.key, f.err
}

// plainError is a non-engine error type, as a foreign toolkit binding
// might return.
type plainError struct{ msg string }

func (e plainError) Error() string { return e.msg }

func errorf(format string, args ...any) error {
	return plainError{msg: fmt.Sprintf(format, args...)}
}

var errBoom = errors.New("boom")
