// Package envtest provides a fake environment variable backend
// for testing purposes.
package envtest

import "fmt"

// Env is a fake environment.
// The nil Env is empty.
type Env map[string]string

// Empty is an environment with no variables.
var Empty Env

// Pairs builds a fake environment from alternating keys and values.
// It panics if given an odd number of items.
func Pairs(kvs ...string) Env {
	if len(kvs)%2 != 0 {
		panic(fmt.Sprintf("%d items in environment are not even", len(kvs)))
	}

	e := make(Env, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		e[kvs[i]] = kvs[i+1]
	}
	return e
}

// Getenv is an analog for the os.Getenv operation.
func (e Env) Getenv(k string) string {
	return e[k]
}

// LookupEnv is an analog for the os.LookupEnv operation.
func (e Env) LookupEnv(k string) (string, bool) {
	v, ok := e[k]
	return v, ok
}
