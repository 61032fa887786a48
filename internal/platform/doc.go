// Package platform provides the filesystem the scaffolder writes through and
// the permission modes it creates entries with. Production code gets an
// os-backed billy.Filesystem bound to the working directory; tests swap in
// an in-memory one.
package platform
