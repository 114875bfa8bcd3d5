//go:build !arenadebug

package typedarena

// ownerGuard is a no-op outside arenadebug builds.
type ownerGuard struct{}

func (*ownerGuard) enter() {}
func (*ownerGuard) exit()  {}
