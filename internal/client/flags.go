package client

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// optionalString is a pflag.Value that leaves its target nil until the flag
// is given, so an omitted flag is sent as null.
type optionalString struct {
	target **string
}

var _ pflag.Value = optionalString{}

func (o optionalString) String() string {
	if o.target == nil || *o.target == nil {
		return ""
	}
	return **o.target
}

func (o optionalString) Set(value string) error {
	*o.target = &value
	return nil
}

func (o optionalString) Type() string {
	return "string"
}

func bindStringFlag(cmd *cobra.Command, target **string, name, usage string) {
	cmd.Flags().Var(optionalString{target: target}, name, usage)
}
