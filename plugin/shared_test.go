package plugin

import "testing"

func TestHandshakeConfig(t *testing.T) {
	if Handshake.ProtocolVersion != ProtocolVersion {
		t.Errorf("ProtocolVersion = %d, want %d", Handshake.ProtocolVersion, ProtocolVersion)
	}
	if Handshake.MagicCookieKey != MagicCookieKey {
		t.Errorf("MagicCookieKey = %q, want %q", Handshake.MagicCookieKey, MagicCookieKey)
	}
	if Handshake.MagicCookieValue != MagicCookieValue {
		t.Errorf("MagicCookieValue = %q, want %q", Handshake.MagicCookieValue, MagicCookieValue)
	}
}

func TestPluginMap(t *testing.T) {
	p, ok := PluginMap[PluginName]
	if !ok {
		t.Fatalf("PluginMap missing %q", PluginName)
	}
	if _, ok := p.(*RuleSetPlugin); !ok {
		t.Errorf("PluginMap[%q] = %T, want *RuleSetPlugin", PluginName, p)
	}
}
