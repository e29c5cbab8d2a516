// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package site

import "testing"

func TestResolveByHost(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		want     Key
	}{
		{"clinic apex", "clinicasouluz.com.br", KeyClinica},
		{"clinic www", "www.clinicasouluz.com.br", KeyClinica},
		{"assessoria apex", "souluzassessoria.com.br", KeyAssessoria},
		{"assessoria www", "www.souluzassessoria.com.br", KeyAssessoria},
		{"primary apex", "souarteemcuidados.com.br", KeySouArte},
		{"primary www", "www.souarteemcuidados.com.br", KeySouArte},
		{"localhost", "localhost", KeySouArte},
		{"unknown host", "example.com", KeySouArte},
		{"empty", "", KeySouArte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveByHost(tt.hostname); got != tt.want {
				t.Errorf("ResolveByHost(%q) = %q, want %q", tt.hostname, got, tt.want)
			}
		})
	}
}

// TestResolveByHost_WWWEquivalence verifies the www prefix never changes
// which brand a hostname resolves to.
func TestResolveByHost_WWWEquivalence(t *testing.T) {
	for _, host := range []string{"clinicasouluz.com.br", "souluzassessoria.com.br", "souarteemcuidados.com.br"} {
		if ResolveByHost(host) != ResolveByHost("www."+host) {
			t.Errorf("www.%s resolves differently from %s", host, host)
		}
	}
}

// TestRegistryCoversAllKeys verifies every key ResolveByHost can return has
// a registered brand, so resolved lookups never miss.
func TestRegistryCoversAllKeys(t *testing.T) {
	for _, key := range []Key{KeySouArte, KeyClinica, KeyAssessoria} {
		b := Get(key)
		if b == nil {
			t.Fatalf("no brand registered for key %q", key)
		}
		if b.Key != key {
			t.Errorf("brand registered under %q has key %q", key, b.Key)
		}
		if b.Title == "" || b.TitleTemplate == "" || b.Icon == "" || b.OGImage == "" {
			t.Errorf("brand %q has incomplete metadata", key)
		}
	}
}

// TestHostRoutesReferenceRegisteredBrands verifies every rewrite target is
// a registered brand home path.
func TestHostRoutesReferenceRegisteredBrands(t *testing.T) {
	valid := map[string]bool{}
	for _, key := range []Key{KeyClinica, KeyAssessoria} {
		valid[Get(key).HomePath] = true
	}
	for host, path := range HostRoutes {
		if !valid[path] {
			t.Errorf("host route %q points at unknown path %q", host, path)
		}
	}
}

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"plain host", "souarteemcuidados.com.br", "souarteemcuidados.com.br"},
		{"host with port", "clinicasouluz.com.br:443", "clinicasouluz.com.br"},
		{"localhost with port", "localhost:3000", "localhost"},
		{"uppercase", "CLINICASOULUZ.COM.BR", "clinicasouluz.com.br"},
		{"empty falls back", "", DefaultHost},
		{"bare port falls back", ":8080", DefaultHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHost(tt.header); got != tt.want {
				t.Errorf("NormalizeHost(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestIsPortalHost(t *testing.T) {
	tests := []struct {
		hostname string
		want     bool
	}{
		{"souarteemcuidados.com.br", true},
		{"www.souarteemcuidados.com.br", true},
		{"localhost", true},
		{"clinicasouluz.com.br", false},
		{"souluzassessoria.com.br", false},
		{"example.com", false},
	}

	for _, tt := range tests {
		if got := IsPortalHost(tt.hostname); got != tt.want {
			t.Errorf("IsPortalHost(%q) = %v, want %v", tt.hostname, got, tt.want)
		}
	}
}

func TestProtocolAndURL(t *testing.T) {
	if got := Protocol("localhost"); got != "http" {
		t.Errorf("Protocol(localhost) = %q, want http", got)
	}
	if got := Protocol("clinicasouluz.com.br"); got != "https" {
		t.Errorf("Protocol(prod host) = %q, want https", got)
	}
	if got := URL("clinicasouluz.com.br"); got != "https://clinicasouluz.com.br" {
		t.Errorf("URL() = %q", got)
	}
}
