// Package plugin provides the entry point for external rule set plugins.
//
// Plugins use this package to register their RuleSet with a host. The
// Serve function is called from main() and handles all communication
// with the host process using HashiCorp's go-plugin library.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/jokarl/eslintrc-sdk/eslintrc"
//	    "github.com/jokarl/eslintrc-sdk/plugin"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &eslintrc.BuiltinRuleSet{
//	            Name:    "vue",
//	            Version: "0.1.0",
//	            Rules:   rules.Rules,
//	        },
//	    })
//	}
package plugin

import (
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// RuleSet is the plugin's rule set implementation.
	RuleSet eslintrc.RuleSet
}

// Serve starts the plugin server.
//
// This function registers the plugin's RuleSet and handles communication
// with the host process. It should be called from the plugin's main()
// function.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of a host), the plugin will print a message and exit.
//
// Communication uses HashiCorp's go-plugin library, which provides:
// - Magic cookie handshake to prevent direct execution
// - Protocol versioning for compatibility
// - A per-connection RPC channel for rule set calls
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		// Nothing to serve
		return
	}

	// Validate the RuleSet is usable (fail fast on misconfiguration)
	_ = opts.RuleSet.RuleSetName()
	_ = opts.RuleSet.RuleSetVersion()
	_ = opts.RuleSet.RuleNames()

	// Check if we're being invoked by a host (via magic cookie)
	// If not, print a helpful message and exit
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(opts.RuleSet)
		return
	}

	// Create a logger for the plugin
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	// Create the plugin map with our implementation
	pluginMap := map[string]plugin.Plugin{
		PluginName: &RuleSetPlugin{Impl: opts.RuleSet},
	}

	// Serve the plugin
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         pluginMap,
		Logger:          logger,
	})
}

// Attach launches the plugin binary at path and returns its rule set.
// The returned cleanup function kills the plugin process; call it when
// done with the rule set. This is the host side of Serve.
func Attach(path string, logger hclog.Logger) (eslintrc.RuleSet, func(), error) {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "host",
			Level:  hclog.Warn,
			Output: os.Stderr,
		})
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap,
		Cmd:             exec.Command(path),
		Logger:          logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, nil, err
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, nil, err
	}

	return raw.(eslintrc.RuleSet), client.Kill, nil
}

// printDirectInvocationMessage prints a helpful message when the plugin
// is invoked directly instead of via a host.
func printDirectInvocationMessage(rs eslintrc.RuleSet) {
	// Use simple writes since we don't want to pull in extra dependencies
	os.Stderr.WriteString("This is an eslintrc rule set plugin.\n\n")
	os.Stderr.WriteString("Plugin: " + rs.RuleSetName() + "\n")
	os.Stderr.WriteString("Version: " + rs.RuleSetVersion() + "\n")
	os.Stderr.WriteString("Rules:\n")
	for _, name := range rs.RuleNames() {
		os.Stderr.WriteString("  - " + name + "\n")
	}
	os.Stderr.WriteString("\nTo use this plugin, declare it in a configuration record\n")
	os.Stderr.WriteString("and run it via a host.\n\n")
	os.Stderr.WriteString("For more information, see: https://github.com/jokarl/eslintrc-sdk\n")
}
