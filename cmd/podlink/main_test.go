package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `version: "1"
project: App.xcodeproj
targets:
  - label: Pods-App
    frameworks: true
    user_targets: ["1D6058900D05DD3D006BFB54"]
    pods: [Alamofire]
    build_settings:
      OTHER_LDFLAGS: -ObjC
pods:
  Alamofire:
    swift: true
    specs:
      - name: Alamofire
        frameworks: [CFNetwork]
`

const pbxproj = `{
	"objects" : {
		"1D6058900D05DD3D006BFB54" : {"isa" : "PBXNativeTarget", "name" : "App"},
		"AB0000000000000000000001" : {"isa" : "PBXFileReference", "path" : "App\/AppDelegate.swift"}
	}
}`

func setup(t *testing.T, projectContent string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "podlink.yaml"), []byte(manifest), 0o600))
	container := filepath.Join(dir, "App.xcodeproj")
	require.NoError(t, os.MkdirAll(container, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(container, "project.pbxproj"), []byte(projectContent), 0o600))
	return dir
}

func TestRun_Report(t *testing.T) {
	dir := setup(t, pbxproj)

	var stdout, stderr bytes.Buffer
	code := run([]string{"report", "-c", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "label: Pods-App")
	assert.Contains(t, out, "product_name: Pods_App.framework")
	assert.Contains(t, out, "pods_root: ${SRCROOT}/Pods")
	assert.Contains(t, out, "changed: true")
	assert.Contains(t, out, "OTHER_LDFLAGS: -ObjC")

	entries, err := os.ReadDir(filepath.Join(dir, ".podlink", "state"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	stdout.Reset()
	code = run([]string{"report", "-c", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "changed: false")
}

func TestRun_Targets(t *testing.T) {
	dir := setup(t, pbxproj)

	var stdout, stderr bytes.Buffer
	code := run([]string{"targets", "--config", filepath.Join(dir, "podlink.yaml")}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Pods-App\t1D6058900D05DD3D006BFB54\tApp\n", stdout.String())
}

func TestRun_TargetsMissingUUID(t *testing.T) {
	dir := setup(t, `{"objects": {}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"targets", "-c", dir}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(stderr.String(), "1D6058900D05DD3D006BFB54"), stderr.String())
}

func TestRun_MissingManifest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"report", "-c", t.TempDir()}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "podlink version "))
}
