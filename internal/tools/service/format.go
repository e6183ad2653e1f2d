package service

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatServiceList renders a service listing.
func FormatServiceList(services []corev1.Service, namespace string) string {
	if len(services) == 0 {
		return fmt.Sprintf("No services found in namespace '%s'", namespace)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Services in namespace '%s':\n\n", namespace)
	for i := range services {
		service := &services[i]
		fmt.Fprintf(&b, "  - %s\n", service.Name)
		fmt.Fprintf(&b, "    Type: %s\n", service.Spec.Type)
		if service.Spec.ClusterIP != "" {
			fmt.Fprintf(&b, "    Cluster IP: %s\n", service.Spec.ClusterIP)
		}
		if len(service.Spec.Ports) > 0 {
			fmt.Fprintf(&b, "    Ports: %s\n", formatPortsInline(service.Spec.Ports))
		}
		if ip := loadBalancerAddress(service); ip != "" {
			fmt.Fprintf(&b, "    External IP: %s\n", ip)
		}
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(service.CreationTimestamp))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatServiceDetails renders the describe_service report.
func FormatServiceDetails(service *corev1.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Service: %s\n", service.Name)
	fmt.Fprintf(&b, "Namespace: %s\n", service.Namespace)
	fmt.Fprintf(&b, "Type: %s\n", service.Spec.Type)
	fmt.Fprintf(&b, "Cluster IP: %s\n", service.Spec.ClusterIP)
	fmt.Fprintf(&b, "Created: %s\n\n", tools.FormatTime(service.CreationTimestamp))

	b.WriteString("Ports:\n")
	if len(service.Spec.Ports) == 0 {
		b.WriteString("  None\n")
	}
	for _, port := range service.Spec.Ports {
		fmt.Fprintf(&b, "  - Port: %d\n", port.Port)
		fmt.Fprintf(&b, "    Target Port: %s\n", port.TargetPort.String())
		fmt.Fprintf(&b, "    Protocol: %s\n", port.Protocol)
		if port.NodePort != 0 {
			fmt.Fprintf(&b, "    Node Port: %d\n", port.NodePort)
		}
	}

	b.WriteString("\nSelector:\n")
	if len(service.Spec.Selector) == 0 {
		b.WriteString("  None\n")
	}
	for _, key := range tools.SortedKeys(service.Spec.Selector) {
		fmt.Fprintf(&b, "  %s=%s\n", key, service.Spec.Selector[key])
	}

	if len(service.Status.LoadBalancer.Ingress) > 0 {
		b.WriteString("\nLoad Balancer Ingress:\n")
		for _, ingress := range service.Status.LoadBalancer.Ingress {
			if ingress.IP != "" {
				fmt.Fprintf(&b, "  IP: %s\n", ingress.IP)
			}
			if ingress.Hostname != "" {
				fmt.Fprintf(&b, "  Hostname: %s\n", ingress.Hostname)
			}
		}
	}

	return b.String()
}

func formatPortsInline(ports []corev1.ServicePort) string {
	rendered := make([]string, 0, len(ports))
	for _, port := range ports {
		rendered = append(rendered, fmt.Sprintf("%d:%s/%s", port.Port, port.TargetPort.String(), port.Protocol))
	}
	return strings.Join(rendered, ", ")
}

// loadBalancerAddress returns the first load balancer ingress address,
// preferring the IP over the hostname.
func loadBalancerAddress(service *corev1.Service) string {
	if len(service.Status.LoadBalancer.Ingress) == 0 {
		return ""
	}
	ingress := service.Status.LoadBalancer.Ingress[0]
	if ingress.IP != "" {
		return ingress.IP
	}
	if ingress.Hostname != "" {
		return ingress.Hostname
	}
	return "N/A"
}
