package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

type alertGroup struct {
	Name  string      `yaml:"name"`
	Rules []alertRule `yaml:"rules"`
}

type alertSpec struct {
	Groups []alertGroup `yaml:"groups"`
}

func TestSupplyHubAlertRules(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "deploy", "prometheus", "alerts", "supplyhub.yml"))
	require.NoError(t, err)

	var rules alertSpec
	require.NoError(t, yaml.Unmarshal(data, &rules))
	require.Len(t, rules.Groups, 1)
	group := rules.Groups[0]
	require.Equal(t, "supplyhub", group.Name)

	expected := map[string]string{
		"HighErrorRate":      "critical",
		"HighLatency":        "warning",
		"QueryFetchFailures": "warning",
		"AlertScanFailing":   "warning",
		"LowStockBacklog":    "info",
	}
	require.Len(t, group.Rules, len(expected))

	for _, rule := range group.Rules {
		severity, ok := expected[rule.Alert]
		require.True(t, ok, "unexpected rule %q", rule.Alert)
		require.Equal(t, severity, rule.Labels["severity"], rule.Alert)
		require.NotEmpty(t, rule.Expr, rule.Alert)
		require.NotEmpty(t, rule.For, rule.Alert)
		require.NotEmpty(t, rule.Annotations["summary"], rule.Alert)
		require.NotEmpty(t, rule.Annotations["description"], rule.Alert)
		require.Contains(t, rule.Expr, "supplyhub_", rule.Alert)
	}
}
