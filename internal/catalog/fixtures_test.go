package catalog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/logger"
)

// assetFixture is a small asset tree. Every category but quest has a
// directory; weapons/bad.json does not parse and potions/broken_potion.json
// parses but is rejected by the factory.
var assetFixture = map[string]string{
	"weapons/iron_sword.json": `{"id": "iron_sword", "name": "Iron Sword", "material": "iron", "damage": 10}`,
	"weapons/bad.json":        `{not json`,
	"weapons/columns.json":    `{"columns": ["name", "damage"]}`,
	"weapons/notes.txt":       `not a record`,
	"armor/leather_cap.yaml":  "id: leather_cap\nname: Leather Cap\ndefense: 3\n",
	"potions/health_potion.json": `{"id": "health_potion", "category": "potions", "name": "Health Potion",
		"healAmount": 30, "effects": [{"type": "heal", "value": 30}]}`,
	"potions/broken_potion.json": `{"id": "broken_potion", "healAmount": {"amount": 30}}`,
	"materials/iron_ore.yml":     "id: iron_ore\nname: Iron Ore\nmaterial: iron\nmaterialType: ore\n",
	"classes/Weapon.js":          `export default class Weapon {}`,
}

func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// captureLogs returns a context whose logger writes JSON lines to the buffer.
func captureLogs(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger.WithLogger(context.Background(), l), &buf
}
