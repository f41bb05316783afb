package rbac

import (
	"sync"

	"go-portal/internal/domain"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin      = "admin"
	RoleTeamLeader = "team_leader"
	RoleEmployee   = "employee"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.seedPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedPolicies memuat policy statis portal. Role portal tidak per-tenant,
// cukup sekali saat startup.
func (s *service) seedPolicies() error {
	// Inheritance: admin > team_leader > employee
	groupings := [][]string{
		{RoleAdmin, RoleTeamLeader},
		{RoleTeamLeader, RoleEmployee},
	}
	for _, g := range groupings {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	policies := [][]string{
		// Everyone logged in
		{RoleEmployee, "leave", "create"},
		{RoleEmployee, "leave", "read"},
		{RoleEmployee, "report", "create"},
		{RoleEmployee, "report", "read"},
		{RoleEmployee, "announcement", "read"},
		{RoleEmployee, "notification", "read"},
		{RoleEmployee, "notification", "write"},
		{RoleEmployee, "profile", "read"},

		// Team leaders decide leave requests routed to them
		{RoleTeamLeader, "leave", "approve"},

		// Admin-only surface
		{RoleAdmin, "report", "approve"},
		{RoleAdmin, "announcement", "create"},
		{RoleAdmin, "announcement", "delete"},
		{RoleAdmin, "employee", "read"},
		{RoleAdmin, "employee", "create"},
		{RoleAdmin, "employee", "update"},
		{RoleAdmin, "employee", "delete"},
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
