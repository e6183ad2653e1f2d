package k8s

// Default client performance settings, matching kubectl's defaults for
// interactive use.
const (
	DefaultQPSLimit   = 20.0
	DefaultBurstLimit = 30
	DefaultTimeout    = 30 // seconds
)

// DefaultNamespace is used when a tool argument omits the namespace.
const DefaultNamespace = "default"

// RestartedAtAnnotation is the pod-template annotation kubectl stamps
// to trigger a rolling restart; the deployment controller reacts to the
// template change, not to this server.
const RestartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

// Node role labels used to classify control-plane nodes. A node
// carrying either label counts as control-plane; everything else is a
// worker.
const (
	LabelControlPlane = "node-role.kubernetes.io/control-plane"
	LabelMaster       = "node-role.kubernetes.io/master"
)

// DefaultEventLimit bounds list_events output when the caller does not
// specify a limit.
const DefaultEventLimit = 50

// DefaultLogTailLines bounds get_pod_logs output when the caller does
// not specify a tail count.
const DefaultLogTailLines = 100
