package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podlink/cmd/podlink/commands"
	"go.trai.ch/podlink/internal/adapters/fs"
	"go.trai.ch/podlink/internal/adapters/telemetry"
	"go.trai.ch/podlink/internal/app"
	"go.trai.ch/podlink/internal/build"
	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports/mocks"
	"go.trai.ch/podlink/internal/engine/integrator"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

type native struct{ uuid, name string }

func (n native) UUID() string { return n.uuid }
func (n native) Name() string { return n.name }

type mocksSet struct {
	loader  *mocks.MockConfigLoader
	hasher  *mocks.MockHasher
	store   *mocks.MockIntegrationStateStore
	project *mocks.MockProjectLoader
	logger  *mocks.MockLogger
}

func newCLI(t *testing.T) (*commands.CLI, *mocksSet, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocksSet{
		loader:  mocks.NewMockConfigLoader(ctrl),
		hasher:  mocks.NewMockHasher(ctrl),
		store:   mocks.NewMockIntegrationStateStore(ctrl),
		project: mocks.NewMockProjectLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	integ := integrator.NewIntegrator(m.hasher, m.store, m.project, telemetry.NewNoOpTracer())
	cli := commands.New(app.New(m.loader, integ, m.logger))

	var out bytes.Buffer
	cli.SetOutput(&out, &bytes.Buffer{})
	return cli, m, &out
}

func workspace(t *testing.T) *domain.Workspace {
	t.Helper()
	def := &domain.Definition{Name: "Pods-App", OnPlatform: domain.Platform{Name: "ios", DeploymentTarget: "13.0"}, Frameworks: true}
	target := domain.NewAggregateTarget(def, fs.NewSandbox("/repo/Pods"))
	require.NoError(t, target.SetClientRoot("/repo"))
	require.NoError(t, target.SetPodTargets([]domain.DependencyTarget{
		&domain.PodTarget{
			PodName: domain.NewInternedString("Alamofire"),
			Specifications: []*domain.Spec{{
				SpecName: domain.NewInternedString("Alamofire"),
				Common:   domain.SpecAttributes{Frameworks: []string{"CFNetwork"}},
			}},
		},
	}))
	require.NoError(t, target.SetUserProject("/repo/App.xcodeproj", []string{"UUID1"}))
	target.SetUserBuildConfigurations(map[string]domain.BuildType{"Debug": domain.BuildTypeDebug})
	target.SetXCConfigs(map[string]*domain.XCConfig{
		"Debug": {Configuration: "Debug", Path: target.XCConfigPath("Debug")},
	})
	return &domain.Workspace{ManifestPath: "/repo/podlink.yaml", Targets: []*domain.AggregateTarget{target}}
}

func TestReport(t *testing.T) {
	cli, m, out := newCLI(t)

	m.loader.EXPECT().Load("/repo/podlink.yaml").Return(workspace(t), nil)
	m.hasher.EXPECT().ComputeReportHash(gomock.Any(), gomock.Any()).Return("00000000000000ff", nil)
	m.store.EXPECT().Get("/state", "Pods-App").Return(nil, nil)
	m.logger.EXPECT().Info(gomock.Any())

	cli.SetArgs([]string{"report", "-c", "/repo/podlink.yaml", "--state", "/state", "--dry-run"})
	require.NoError(t, cli.Execute(context.Background()))

	var report domain.IntegrationReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "Pods-App", report.Label)
	assert.Equal(t, "Pods_App.framework", report.ProductName)
	assert.Equal(t, "iOS 13.0", report.Platform)
	assert.Equal(t, "${SRCROOT}/Pods", report.PodsRoot)
	assert.Equal(t, "00000000000000ff", report.Fingerprint)
	assert.True(t, report.Changed)
	require.Len(t, report.Configurations, 1)
	assert.Equal(t, "Pods/Target Support Files/Pods-App/Pods-App.debug.xcconfig", report.Configurations[0].XCConfig)
	assert.Equal(t, []string{"CFNetwork"}, report.Configurations[0].Frameworks)
}

func TestReport_UnknownLabel(t *testing.T) {
	cli, m, _ := newCLI(t)
	m.loader.EXPECT().Load(".").Return(workspace(t), nil)

	cli.SetArgs([]string{"report", "Pods-Nope"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrAggregateTargetNotFound)
}

func TestTargets(t *testing.T) {
	cli, m, out := newCLI(t)
	ctrl := gomock.NewController(t)
	project := mocks.NewMockProject(ctrl)

	m.loader.EXPECT().Load(".").Return(workspace(t), nil)
	m.project.EXPECT().Open("/repo/App.xcodeproj").Return(project, nil)
	project.EXPECT().ObjectByUUID("UUID1").Return(native{"UUID1", "App"}, true)

	cli.SetArgs([]string{"targets", "-j", "2"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "Pods-App\tUUID1\tApp\n", out.String())
}

func TestVersion(t *testing.T) {
	cli, _, out := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "podlink version "+build.Version+"\n", out.String())
}
