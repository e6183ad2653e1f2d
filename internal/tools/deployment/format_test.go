package deployment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

func fixtureDeployment(name string) appsv1.Deployment {
	return appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         "default",
			CreationTimestamp: metav1.NewTime(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)),
		},
		Spec: appsv1.DeploymentSpec{Replicas: ptr.To(int32(3))},
		Status: appsv1.DeploymentStatus{
			ReadyReplicas:     2,
			AvailableReplicas: 2,
		},
	}
}

func TestFormatDeploymentList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := FormatDeploymentList(nil, "default")
		assert.Equal(t, "No deployments found in namespace 'default'", out)
	})

	t.Run("renders records", func(t *testing.T) {
		out := FormatDeploymentList([]appsv1.Deployment{fixtureDeployment("web")}, "default")

		assert.True(t, strings.HasPrefix(out, "Deployments in namespace 'default':\n\n"))
		assert.Contains(t, out, "  - web\n")
		assert.Contains(t, out, "    Replicas: 2/3 ready, 2 available\n")
		assert.Contains(t, out, "    Age: 2026-02-01T08:00:00Z\n")
		assert.Contains(t, out, "    Strategy: RollingUpdate\n")
	})

	t.Run("explicit strategy", func(t *testing.T) {
		deployment := fixtureDeployment("web")
		deployment.Spec.Strategy.Type = appsv1.RecreateDeploymentStrategyType
		out := FormatDeploymentList([]appsv1.Deployment{deployment}, "default")
		assert.Contains(t, out, "    Strategy: Recreate\n")
	})
}

func TestFormatScaleSuccess(t *testing.T) {
	out := FormatScaleSuccess("web", 5, "default")
	assert.Equal(t, "Successfully scaled deployment 'web' to 5 replicas in namespace 'default'", out)
}

func TestFormatRestartSuccess(t *testing.T) {
	out := FormatRestartSuccess("web", "default")
	assert.Equal(t, "Successfully triggered rolling restart for deployment 'web' in namespace 'default'", out)
}
