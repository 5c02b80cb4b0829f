// Package plugin provides the entry point for external rule set plugins.
//
// This file implements the go-plugin Plugin interface over the built-in
// net/rpc protocol, bridging the native eslintrc.RuleSet interface with
// the plugin connection. The host dispenses a RuleSetClient; the plugin
// process serves a RuleSetServer around its implementation.

package plugin

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

// Ensure RuleSetPlugin implements plugin.Plugin.
var _ plugin.Plugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the go-plugin glue for the RuleSet service.
// This is used by both the host (to create a client) and the plugin
// (to create a server).
type RuleSetPlugin struct {
	// Impl is the concrete implementation of the RuleSet interface.
	// Only used when serving (plugin side).
	Impl eslintrc.RuleSet
}

// Server is called on the plugin side to create the RPC server.
func (p *RuleSetPlugin) Server(_ *plugin.MuxBroker) (any, error) {
	return &RuleSetServer{impl: p.Impl}, nil
}

// Client is called on the host side to create the RPC client.
func (p *RuleSetPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &RuleSetClient{client: c}, nil
}

// Empty is the argument/response type for calls carrying no data.
type Empty struct{}

// PresetResponse carries one preset lookup result.
type PresetResponse struct {
	Found  bool
	Config *WireConfig
}

// =============================================================================
// RuleSetServer - Plugin side
// =============================================================================

// RuleSetServer wraps an eslintrc.RuleSet to serve it over the plugin
// connection. This runs in the plugin process.
type RuleSetServer struct {
	impl eslintrc.RuleSet
}

// RuleSetName returns the name of the rule set.
func (s *RuleSetServer) RuleSetName(_ *Empty, resp *string) error {
	*resp = s.impl.RuleSetName()
	return nil
}

// RuleSetVersion returns the version of the rule set.
func (s *RuleSetServer) RuleSetVersion(_ *Empty, resp *string) error {
	*resp = s.impl.RuleSetVersion()
	return nil
}

// RuleNames returns the names of all rules in the rule set.
func (s *RuleSetServer) RuleNames(_ *Empty, resp *[]string) error {
	*resp = s.impl.RuleNames()
	return nil
}

// VersionConstraint returns the host version constraint.
func (s *RuleSetServer) VersionConstraint(_ *Empty, resp *string) error {
	*resp = s.impl.VersionConstraint()
	return nil
}

// PresetNames returns the names of the presets the rule set offers.
func (s *RuleSetServer) PresetNames(_ *Empty, resp *[]string) error {
	*resp = s.impl.PresetNames()
	return nil
}

// Preset returns the configuration contributed by the named preset.
func (s *RuleSetServer) Preset(name *string, resp *PresetResponse) error {
	cfg := s.impl.Preset(*name)
	if cfg == nil {
		*resp = PresetResponse{}
		return nil
	}
	w, err := toWireConfig(cfg)
	if err != nil {
		return err
	}
	*resp = PresetResponse{Found: true, Config: w}
	return nil
}

// ApplyGlobalConfig applies the host's resolved record to the rule set.
func (s *RuleSetServer) ApplyGlobalConfig(args *WireConfig, _ *Empty) error {
	cfg, err := fromWireConfig(args)
	if err != nil {
		return err
	}
	return s.impl.ApplyGlobalConfig(cfg)
}

// =============================================================================
// RuleSetClient - Host side
// =============================================================================

// RuleSetClient is the host-side view of a remote rule set.
// It implements eslintrc.RuleSet over the plugin connection.
type RuleSetClient struct {
	client *rpc.Client
}

// Ensure RuleSetClient implements eslintrc.RuleSet.
var _ eslintrc.RuleSet = (*RuleSetClient)(nil)

// RuleSetName returns the name of the remote rule set.
func (c *RuleSetClient) RuleSetName() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetName", new(Empty), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleSetVersion returns the version of the remote rule set.
func (c *RuleSetClient) RuleSetVersion() string {
	var resp string
	if err := c.client.Call("Plugin.RuleSetVersion", new(Empty), &resp); err != nil {
		return ""
	}
	return resp
}

// RuleNames returns the rule names of the remote rule set.
func (c *RuleSetClient) RuleNames() []string {
	var resp []string
	if err := c.client.Call("Plugin.RuleNames", new(Empty), &resp); err != nil {
		return nil
	}
	return resp
}

// VersionConstraint returns the remote rule set's host constraint.
func (c *RuleSetClient) VersionConstraint() string {
	var resp string
	if err := c.client.Call("Plugin.VersionConstraint", new(Empty), &resp); err != nil {
		return ""
	}
	return resp
}

// PresetNames returns the preset names of the remote rule set.
func (c *RuleSetClient) PresetNames() []string {
	var resp []string
	if err := c.client.Call("Plugin.PresetNames", new(Empty), &resp); err != nil {
		return nil
	}
	return resp
}

// Preset returns the named preset of the remote rule set.
func (c *RuleSetClient) Preset(name string) *eslintrc.Config {
	var resp PresetResponse
	if err := c.client.Call("Plugin.Preset", &name, &resp); err != nil || !resp.Found {
		return nil
	}
	cfg, err := fromWireConfig(resp.Config)
	if err != nil {
		return nil
	}
	return cfg
}

// ApplyGlobalConfig applies the record to the remote rule set.
func (c *RuleSetClient) ApplyGlobalConfig(cfg *eslintrc.Config) error {
	w, err := toWireConfig(cfg)
	if err != nil {
		return err
	}
	return c.client.Call("Plugin.ApplyGlobalConfig", w, new(Empty))
}

// NewRunner returns the runner unchanged; remote rule sets cannot wrap
// the host's runner.
func (c *RuleSetClient) NewRunner(runner eslintrc.Runner) (eslintrc.Runner, error) {
	return runner, nil
}

// BuiltinImpl returns nil: a remote rule set has no in-process
// BuiltinRuleSet.
func (c *RuleSetClient) BuiltinImpl() *eslintrc.BuiltinRuleSet {
	return nil
}
