package service

import (
	"context"
	"sync"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.uber.org/zap"
)

// GatewayMonitor keeps the latest WhatsApp gateway inventory for the
// admin panel. Refresh runs on the background poll runner; reads never
// touch the gateway.
type GatewayMonitor struct {
	prober  port.GatewayProber
	metrics *observability.Metrics
	logger  *zap.Logger

	mu        sync.RWMutex
	instances []domain.GatewayInstance
	lastErr   error
	checkedAt time.Time
}

// NewGatewayMonitor creates a monitor with an empty snapshot.
func NewGatewayMonitor(prober port.GatewayProber, metrics *observability.Metrics, logger *zap.Logger) *GatewayMonitor {
	return &GatewayMonitor{
		prober:  prober,
		metrics: metrics,
		logger:  logger,
	}
}

// Refresh fetches the instance inventory. Designed as a poll.Runner fn.
func (m *GatewayMonitor) Refresh(ctx context.Context) error {
	instances, err := m.prober.FetchInstances(ctx)

	m.mu.Lock()
	m.lastErr = err
	m.checkedAt = time.Now()
	if err == nil {
		m.instances = instances
	}
	m.mu.Unlock()

	if err != nil {
		m.metrics.IncrPollRun("gateway", "error")
		return err
	}
	m.metrics.IncrPollRun("gateway", "ok")
	return nil
}

// ProbeInstance asks the gateway for one instance's live connection
// state, bypassing the snapshot. The snapshot entry, if present, is
// updated in place so the panel doesn't wait for the next poll.
func (m *GatewayMonitor) ProbeInstance(ctx context.Context, instanceName string) (domain.GatewayInstance, error) {
	state, err := m.prober.ConnectionState(ctx, instanceName)
	if err != nil {
		return domain.GatewayInstance{}, err
	}

	inst := domain.GatewayInstance{
		InstanceName: instanceName,
		State:        state,
		CheckedAt:    time.Now().Format(time.RFC3339),
	}

	m.mu.Lock()
	for i := range m.instances {
		if m.instances[i].InstanceName == instanceName {
			inst.TenantID = m.instances[i].TenantID
			m.instances[i].State = state
			m.instances[i].CheckedAt = inst.CheckedAt
		}
	}
	m.mu.Unlock()

	return inst, nil
}

// DisconnectTenant logs the tenant's instance out at the gateway.
// A tenant with no instance in the last inventory is a no-op.
func (m *GatewayMonitor) DisconnectTenant(ctx context.Context, tenantID string) error {
	m.mu.RLock()
	name := ""
	for _, inst := range m.instances {
		if inst.TenantID == tenantID {
			name = inst.InstanceName
			break
		}
	}
	m.mu.RUnlock()

	if name == "" {
		return nil
	}

	if err := m.prober.LogoutInstance(ctx, name); err != nil {
		return err
	}

	m.mu.Lock()
	for i := range m.instances {
		if m.instances[i].InstanceName == name {
			m.instances[i].State = domain.WhatsAppDisconnected
		}
	}
	m.mu.Unlock()

	m.logger.Info("gateway instance logged out",
		zap.String("tenant_id", tenantID),
		zap.String("instance", name),
	)
	return nil
}

// Snapshot returns the current gateway health view, including the BFF's
// cumulative call counters toward the gateway.
func (m *GatewayMonitor) Snapshot() domain.GatewayHealth {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := "healthy"
	if m.checkedAt.IsZero() {
		status = "unknown"
	} else if m.lastErr != nil {
		status = "unreachable"
	}

	calls, errs := m.metrics.GatewayCounters()

	instances := make([]domain.GatewayInstance, len(m.instances))
	copy(instances, m.instances)

	checked := ""
	if !m.checkedAt.IsZero() {
		checked = m.checkedAt.Format(time.RFC3339)
	}

	return domain.GatewayHealth{
		Status:        status,
		Instances:     instances,
		RequestsTotal: calls,
		ErrorsTotal:   errs,
		CheckedAt:     checked,
	}
}
