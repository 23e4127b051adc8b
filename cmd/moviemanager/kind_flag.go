package main

import (
	"github.com/spf13/pflag"

	"moviemanager/internal/media"
)

// kindValue is a pflag.Value that only accepts known media kinds.
type kindValue struct {
	kind media.Kind
	set  bool
}

var _ pflag.Value = (*kindValue)(nil)

func (v *kindValue) String() string {
	return string(v.kind)
}

func (v *kindValue) Set(value string) error {
	kind, err := media.ParseKind(value)
	if err != nil {
		return err
	}
	v.kind = kind
	v.set = true
	return nil
}

func (v *kindValue) Type() string {
	return "kind"
}

// resolve returns the flag value when given, otherwise fallback parsed as a
// kind.
func (v *kindValue) resolve(fallback string) (media.Kind, error) {
	if v.set {
		return v.kind, nil
	}
	return media.ParseKind(fallback)
}
