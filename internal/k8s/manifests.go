package k8s

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	defaultKubectlPath  = "kubectl"
	defaultApplyTimeout = 60 * time.Second
)

// SupportedManifestKinds lists the resource kinds get_yaml can fetch.
// All of them are namespaced, so a namespace argument is always
// required.
var SupportedManifestKinds = []string{"Pod", "Deployment", "Service", "ConfigMap", "Secret"}

// ManifestManager implementation

// GetManifest fetches a resource and serializes it as YAML. The object
// is marshaled to JSON first (struct field order) and converted with
// goccy/go-yaml, which preserves key order instead of sorting
// alphabetically, so output matches API emission order.
func (c *kubernetesClient) GetManifest(ctx context.Context, kind, namespace, name string) (string, error) {
	c.logOperation("get-manifest", namespace, kind, name)

	obj, err := c.fetchManifestObject(ctx, kind, namespace, name)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.Marshal(obj)
	if err != nil {
		return "", classify(fmt.Errorf("failed to marshal %s/%s: %w", kind, name, err), kind, name, namespace)
	}

	yamlBytes, err := yaml.JSONToYAML(jsonBytes)
	if err != nil {
		return "", classify(fmt.Errorf("failed to convert %s/%s to YAML: %w", kind, name, err), kind, name, namespace)
	}

	return string(yamlBytes), nil
}

// fetchManifestObject retrieves a typed object for the given kind with
// its TypeMeta populated. Clientset responses omit apiVersion/kind, so
// they are set explicitly before serialization.
func (c *kubernetesClient) fetchManifestObject(ctx context.Context, kind, namespace, name string) (any, error) {
	switch kind {
	case "Pod":
		pod, err := c.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, classify(err, kind, name, namespace)
		}
		pod.TypeMeta = metav1.TypeMeta{APIVersion: "v1", Kind: "Pod"}
		return pod, nil
	case "Deployment":
		deployment, err := c.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, classify(err, kind, name, namespace)
		}
		deployment.TypeMeta = metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"}
		return deployment, nil
	case "Service":
		service, err := c.clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, classify(err, kind, name, namespace)
		}
		service.TypeMeta = metav1.TypeMeta{APIVersion: "v1", Kind: "Service"}
		return service, nil
	case "ConfigMap":
		configMap, err := c.clientset.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, classify(err, kind, name, namespace)
		}
		configMap.TypeMeta = metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"}
		return configMap, nil
	case "Secret":
		secret, err := c.clientset.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, classify(err, kind, name, namespace)
		}
		secret.TypeMeta = metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"}
		return secret, nil
	default:
		return nil, NewArgumentError("unsupported resource kind: %s. Supported: %s",
			kind, strings.Join(SupportedManifestKinds, ", "))
	}
}

// ApplyManifest validates the YAML locally, writes it to a transient
// file and runs kubectl apply against it with a bounded deadline. The
// transient file is removed on every exit path.
func (c *kubernetesClient) ApplyManifest(ctx context.Context, content string) (string, error) {
	c.logOperation("apply-manifest", "", "", "")

	if err := validateManifest(content); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "k8s-mcp-apply-*.yaml")
	if err != nil {
		return "", classify(fmt.Errorf("failed to create temporary manifest file: %w", err), "", "", "")
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", classify(fmt.Errorf("failed to write temporary manifest file: %w", err), "", "", "")
	}
	if err := tmpFile.Close(); err != nil {
		return "", classify(fmt.Errorf("failed to close temporary manifest file: %w", err), "", "", "")
	}

	cmdCtx, cancel := context.WithTimeout(ctx, c.applyTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, c.kubectlPath, "apply", "-f", tmpFile.Name())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return "", NewTimeoutError("kubectl apply timed out after %d seconds", int(c.applyTimeout.Seconds()))
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", &OpError{
				Kind: ErrorKindUnexpected,
				Err:  fmt.Errorf("kubectl command not found; make sure kubectl is installed and in PATH"),
			}
		}
		return "", &OpError{
			Kind:   ErrorKindAPI,
			Reason: "kubectl apply failed",
			Body:   strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.String(), nil
}

// validateManifest parses the content as a YAML document stream and
// rejects syntax errors and empty or all-null document sets before any
// external call is made.
func validateManifest(content string) error {
	decoder := yaml.NewDecoder(strings.NewReader(content))

	hasResource := false
	for {
		var doc any
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return NewArgumentError("YAML parsing error: %v", err)
		}
		if doc != nil {
			hasResource = true
		}
	}

	if !hasResource {
		return NewArgumentError("No valid resources found in YAML")
	}

	return nil
}
