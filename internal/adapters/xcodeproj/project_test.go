package xcodeproj_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podlink/internal/adapters/xcodeproj"
	"go.trai.ch/podlink/internal/core/domain"
)

const pbxproj = `{
  "archiveVersion": "1",
  "objectVersion": "54",
  "rootObject": "29B97313FDCFA39411CA2CEA",
  "objects": {
    "29B97313FDCFA39411CA2CEA": {"isa": "PBXProject", "targets": ["1D6058900D05DD3D006BFB54", "AA0000000000000000000001"]},
    "1D6058900D05DD3D006BFB54": {
      "isa": "PBXNativeTarget",
      "name": "App",
      "productName": "App",
      "productType": "com.apple.product-type.application"
    },
    "AA0000000000000000000001": {"isa": "PBXAggregateTarget", "name": "Lint"},
    "BB0000000000000000000001": {"isa": "PBXFileReference", "name": "main.m"}
  }
}`

// plutil writes tab-indented JSON and escapes every forward slash.
const plutilPbxproj = "{\n" +
	"\t\"archiveVersion\" : \"1\",\n" +
	"\t\"objects\" : {\n" +
	"\t\t\"1D6058900D05DD3D006BFB54\" : {\n" +
	"\t\t\t\"isa\" : \"PBXNativeTarget\",\n" +
	"\t\t\t\"name\" : \"App\",\n" +
	"\t\t\t\"productType\" : \"com.apple.product-type.application\"\n" +
	"\t\t},\n" +
	"\t\t\"BB0000000000000000000001\" : {\n" +
	"\t\t\t\"isa\" : \"PBXFileReference\",\n" +
	"\t\t\t\"path\" : \"App\\/Sources\\/main.m\"\n" +
	"\t\t}\n" +
	"\t},\n" +
	"\t\"rootObject\" : \"29B97313FDCFA39411CA2CEA\"\n" +
	"}\n"

func writeProject(t *testing.T, content string) string {
	t.Helper()
	container := filepath.Join(t.TempDir(), "App.xcodeproj")
	require.NoError(t, os.MkdirAll(container, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(container, xcodeproj.ProjectFilename), []byte(content), 0o600))
	return container
}

func TestLoader_Open(t *testing.T) {
	container := writeProject(t, pbxproj)

	project, err := xcodeproj.NewLoader().Open(container)
	require.NoError(t, err)

	p, ok := project.(*xcodeproj.Project)
	require.True(t, ok)
	assert.Equal(t, container, p.Path())
	assert.Equal(t, 2, p.Len())

	app, ok := project.ObjectByUUID("1D6058900D05DD3D006BFB54")
	require.True(t, ok)
	assert.Equal(t, "App", app.Name())
	assert.Equal(t, "1D6058900D05DD3D006BFB54", app.UUID())

	target, ok := app.(*xcodeproj.Target)
	require.True(t, ok)
	assert.Equal(t, xcodeproj.ISANativeTarget, target.ISA())
	assert.Equal(t, "com.apple.product-type.application", target.ProductType())

	lint, ok := project.ObjectByUUID("AA0000000000000000000001")
	require.True(t, ok)
	assert.Equal(t, "Lint", lint.Name())
}

func TestLoader_OpenPlutilOutput(t *testing.T) {
	project, err := xcodeproj.NewLoader().Open(writeProject(t, plutilPbxproj))
	require.NoError(t, err)

	app, ok := project.ObjectByUUID("1D6058900D05DD3D006BFB54")
	require.True(t, ok)
	assert.Equal(t, "App", app.Name())

	_, ok = project.ObjectByUUID("BB0000000000000000000001")
	assert.False(t, ok)
}

func TestLoader_NonTargetObjects(t *testing.T) {
	project, err := xcodeproj.NewLoader().Open(writeProject(t, pbxproj))
	require.NoError(t, err)

	for _, uuid := range []string{"29B97313FDCFA39411CA2CEA", "BB0000000000000000000001", "missing"} {
		_, ok := project.ObjectByUUID(uuid)
		assert.False(t, ok, uuid)
	}
}

func TestLoader_OpenFile(t *testing.T) {
	container := writeProject(t, pbxproj)

	project, err := xcodeproj.NewLoader().Open(filepath.Join(container, xcodeproj.ProjectFilename))
	require.NoError(t, err)
	_, ok := project.ObjectByUUID("1D6058900D05DD3D006BFB54")
	assert.True(t, ok)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := xcodeproj.NewLoader().Open(filepath.Join(t.TempDir(), "None.xcodeproj"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := xcodeproj.NewLoader().Open(writeProject(t, `{"objects": [`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse project")
	})

	t.Run("no objects", func(t *testing.T) {
		_, err := xcodeproj.NewLoader().Open(writeProject(t, `{"archiveVersion": "1"}`))
		require.Error(t, err)
	})
}

func TestLoader_ResolvesAggregateUserTargets(t *testing.T) {
	container := writeProject(t, pbxproj)

	def := &domain.Definition{Name: "Pods-App", OnPlatform: domain.Platform{Name: "ios"}}
	target := domain.NewAggregateTarget(def, nil)
	require.NoError(t, target.SetUserProject(container, []string{"1D6058900D05DD3D006BFB54"}))

	natives, err := target.UserTargets(nil, xcodeproj.NewLoader())
	require.NoError(t, err)
	require.Len(t, natives, 1)
	assert.Equal(t, "App", natives[0].Name())
}
