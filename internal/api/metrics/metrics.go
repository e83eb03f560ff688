// Package metrics defines and registers all custom Prometheus metrics for
// the hospital API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the role assigned to the new account ("Doctor", "Patient")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PatientsCreatedTotal counts newly created patient records.
var PatientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_created_total",
		Help:      "Total number of patient records created.",
	},
)

// PatientsDeletedTotal counts removed patient records.
var PatientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_deleted_total",
		Help:      "Total number of patient records deleted.",
	},
)

// PatientUpdateConflictsTotal counts updates rejected because the record's
// version moved between read and write.
var PatientUpdateConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patient_update_conflicts_total",
		Help:      "Total number of patient updates rejected by optimistic concurrency.",
	},
)
