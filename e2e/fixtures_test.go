//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary working directory whose
// stagewiki.toml points at the bundled data files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	root, err := filepath.Abs("..")
	if err != nil {
		return "", err
	}
	config := fmt.Sprintf("version = 1\nbase = %q\nlog_file = \"stagewiki.log\"\n", root)
	if err := os.WriteFile(filepath.Join(tmpDir, "stagewiki.toml"), []byte(config), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return tmpDir, nil
}

// CreateDataFile writes a data source into the workspace
func (tf *TUITestFramework) CreateDataFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}
