// Package version reports build information for viewkit commands.
//
// Values are taken from -ldflags when set and from the module build info
// otherwise:
//
//	go build -ldflags "-X github.com/kbukum/viewkit/version.Version=1.0.0" ./cmd/viewdemo
package version
