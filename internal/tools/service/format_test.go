package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func fixtureService(name string) corev1.Service {
	return corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         "default",
			CreationTimestamp: metav1.NewTime(time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)),
		},
		Spec: corev1.ServiceSpec{
			Type:      corev1.ServiceTypeClusterIP,
			ClusterIP: "10.96.0.10",
			Selector:  map[string]string{"app": "web", "tier": "frontend"},
			Ports: []corev1.ServicePort{{
				Port:       80,
				TargetPort: intstr.FromInt32(8080),
				Protocol:   corev1.ProtocolTCP,
			}},
		},
	}
}

func TestFormatServiceList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No services found in namespace 'default'", FormatServiceList(nil, "default"))
	})

	t.Run("renders records", func(t *testing.T) {
		out := FormatServiceList([]corev1.Service{fixtureService("web")}, "default")

		assert.True(t, strings.HasPrefix(out, "Services in namespace 'default':\n\n"))
		assert.Contains(t, out, "  - web\n")
		assert.Contains(t, out, "    Type: ClusterIP\n")
		assert.Contains(t, out, "    Cluster IP: 10.96.0.10\n")
		assert.Contains(t, out, "    Ports: 80:8080/TCP\n")
		assert.NotContains(t, out, "External IP")
	})

	t.Run("load balancer external address", func(t *testing.T) {
		service := fixtureService("web")
		service.Spec.Type = corev1.ServiceTypeLoadBalancer
		service.Status.LoadBalancer.Ingress = []corev1.LoadBalancerIngress{{IP: "203.0.113.10"}}

		out := FormatServiceList([]corev1.Service{service}, "default")
		assert.Contains(t, out, "    External IP: 203.0.113.10\n")
	})
}

func TestFormatServiceDetails(t *testing.T) {
	service := fixtureService("web")
	service.Spec.Ports[0].NodePort = 30080

	out := FormatServiceDetails(&service)

	assert.Contains(t, out, "Service: web\n")
	assert.Contains(t, out, "  - Port: 80\n")
	assert.Contains(t, out, "    Target Port: 8080\n")
	assert.Contains(t, out, "    Node Port: 30080\n")
	// selector keys are sorted
	assert.Contains(t, out, "Selector:\n  app=web\n  tier=frontend\n")
}

func TestFormatServiceDetails_NamedTargetPort(t *testing.T) {
	service := fixtureService("web")
	service.Spec.Ports[0].TargetPort = intstr.FromString("http")

	out := FormatServiceDetails(&service)
	assert.Contains(t, out, "    Target Port: http\n")
}
