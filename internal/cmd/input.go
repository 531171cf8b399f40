package cmd

import (
	"github.com/spf13/pflag"
)

// Input contains the flags of the root command.
type Input struct {
	configPath string
	method     string
	output     string
	verbose    bool
	strict     bool
}

func (i *Input) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.configPath, "config", "c", "", "path to config file (default ./.netplan.yaml if present)")
	fs.StringVarP(&i.method, "method", "m", "kruskal", "spanning tree algorithm: kruskal or prim")
	fs.StringVarP(&i.output, "output", "o", "text", "output format: text, yaml or json")
	fs.BoolVarP(&i.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&i.strict, "strict", false, "fail when the sites do not form a single network")
}
