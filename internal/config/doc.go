// Package config manages user-level settings stored at
// ~/.bounded-context/config.yaml, overridable through BCTX_* environment
// variables. Settings only affect how the tool behaves (name strictness,
// logging); none of them change the generated tree.
package config
