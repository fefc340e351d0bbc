package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase/interfaces"
	mock_interfaces "estimaciones_obra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimationMocks struct {
	repo     *mock_interfaces.MockIEstimationRepository
	history  *mock_interfaces.MockIApprovalHistoryRepository
	projects *mock_interfaces.MockIProjectRepository
}

func newEstimationUseCaseForTest(t *testing.T) (*EstimationUseCase, estimationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := estimationMocks{
		repo:     mock_interfaces.NewMockIEstimationRepository(ctrl),
		history:  mock_interfaces.NewMockIApprovalHistoryRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
	}
	uc := NewEstimationUseCase(m.repo, m.history, m.projects, 0)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestEstimationUseCase_CreateEstimation(t *testing.T) {
	valid := CreateEstimationInput{ProjectID: "p-1", Folio: " EST-001 ", ContractorName: "Constructora Norte", Amount: 1500.5}
	contratista := actorOf(entities.RoleContratista)

	t.Run("only contratista or admin registers", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		for _, role := range []entities.Role{entities.RoleResident, entities.RoleCompras, entities.RolePagos, ""} {
			if _, err := uc.CreateEstimation(context.Background(), actorOf(role), valid); !errors.Is(err, ErrCreateForbidden) {
				t.Fatalf("%q: expected ErrCreateForbidden, got %v", role, err)
			}
		}
	})

	t.Run("validations", func(t *testing.T) {
		uc, _ := newEstimationUseCaseForTest(t)
		cases := []struct {
			name string
			in   CreateEstimationInput
			want error
		}{
			{name: "project", in: CreateEstimationInput{Folio: "F", Amount: 1}, want: ErrInvalidProjectID},
			{name: "folio", in: CreateEstimationInput{ProjectID: "p-1", Folio: " ", Amount: 1}, want: ErrInvalidFolio},
			{name: "amount", in: CreateEstimationInput{ProjectID: "p-1", Folio: "F", Amount: 0}, want: ErrInvalidAmount},
		}
		for _, tc := range cases {
			if _, err := uc.CreateEstimation(context.Background(), contratista, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("project not found", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.CreateEstimation(context.Background(), contratista, valid)
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("duplicate folio", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", DefaultActivation: entities.AllRolesActive()}, nil)
		m.repo.EXPECT().GetByFolio(gomock.Any(), "p-1", "EST-001").Return(entities.Estimation{ID: "est-0"}, nil)

		_, err := uc.CreateEstimation(context.Background(), contratista, valid)
		if !errors.Is(err, ErrEstimationAlreadyExists) {
			t.Fatalf("expected ErrEstimationAlreadyExists, got %v", err)
		}
	})

	t.Run("copies project defaults", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		defaults := entities.RoleActivation{ResidentActive: false, SuperintendentActive: true, LeaderActive: true}
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", DefaultActivation: defaults}, nil)
		m.repo.EXPECT().GetByFolio(gomock.Any(), "p-1", "EST-001").Return(entities.Estimation{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.ID == "" || e.Folio != "EST-001" || e.Amount != 1500.5 {
					t.Fatalf("unexpected estimation: %+v", e)
				}
				if e.Status != entities.StatusRegistered {
					t.Fatalf("expected registered, got %s", e.Status)
				}
				if e.Activation != defaults {
					t.Fatalf("activation must come from project defaults")
				}
				if e.Version != 1 || !e.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected version/created_at: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.CreateEstimation(context.Background(), contratista, valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin registers", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", DefaultActivation: entities.AllRolesActive()}, nil)
		m.repo.EXPECT().GetByFolio(gomock.Any(), "p-1", "EST-001").Return(entities.Estimation{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) { return e, nil },
		)

		if _, err := uc.CreateEstimation(context.Background(), actorOf(entities.RoleAdmin), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newEstimationUseCaseForTest(t)
		if _, err := uc.GetByID(context.Background(), "", entities.RoleAdmin); !errors.Is(err, ErrInvalidEstimationID) {
			t.Fatalf("expected ErrInvalidEstimationID, got %v", err)
		}
	})

	t.Run("invalid viewer", func(t *testing.T) {
		uc, _ := newEstimationUseCaseForTest(t)
		if _, err := uc.GetByID(context.Background(), "est-1", "guest"); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{}, nil)
		if _, err := uc.GetByID(context.Background(), "est-1", entities.RoleAdmin); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("hidden from viewer", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{
			ID: "est-1", Status: entities.StatusRegistered, Activation: entities.AllRolesActive(),
		}, nil)
		if _, err := uc.GetByID(context.Background(), "est-1", entities.RoleLeader); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("visible to the role it waits on", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{
			ID: "est-1", Status: entities.StatusRegistered, Activation: entities.AllRolesActive(),
		}, nil)
		e, err := uc.GetByID(context.Background(), " est-1 ", entities.RoleResident)
		if err != nil || e.ID != "est-1" {
			t.Fatalf("unexpected result err=%v e=%+v", err, e)
		}
	})
}

func TestEstimationUseCase_ListByProject(t *testing.T) {
	all := []entities.Estimation{
		{ID: "a", Status: entities.StatusRegistered, Activation: entities.AllRolesActive()},
		{ID: "b", Status: entities.StatusAuthLeader, Activation: entities.AllRolesActive()},
		{ID: "c", Status: entities.StatusFacturaSubida, Activation: entities.AllRolesActive()},
	}

	cases := []struct {
		role entities.Role
		want []string
	}{
		{role: entities.RoleAdmin, want: []string{"a", "b", "c"}},
		{role: entities.RoleContratista, want: []string{"a", "b", "c"}},
		{role: entities.RoleResident, want: []string{"a", "b", "c"}},
		{role: entities.RoleCompras, want: []string{"b", "c"}},
		{role: entities.RoleFinanzas, want: []string{"c"}},
		{role: entities.RolePagos, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			uc, m := newEstimationUseCaseForTest(t)
			m.repo.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return(all, nil)

			res, err := uc.ListByProject(context.Background(), "p-1", tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, res)
			}
			for i, id := range tc.want {
				if res[i].ID != id {
					t.Fatalf("expected %v, got %+v", tc.want, res)
				}
			}
		})
	}

	t.Run("invalid viewer", func(t *testing.T) {
		uc, _ := newEstimationUseCaseForTest(t)
		if _, err := uc.ListByProject(context.Background(), "p-1", "guest"); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})
}

func TestEstimationUseCase_UpdateActivation(t *testing.T) {
	admin := entities.Actor{UserID: "u-admin", UserName: "Admin", Role: entities.RoleAdmin}
	activation := entities.RoleActivation{ResidentActive: true}

	t.Run("forbidden for non admin", func(t *testing.T) {
		uc, _ := newEstimationUseCaseForTest(t)
		_, err := uc.UpdateActivation(context.Background(), "est-1", actorOf(entities.RoleLeader), activation)
		if !errors.Is(err, ErrActivationForbidden) {
			t.Fatalf("expected ErrActivationForbidden, got %v", err)
		}
	})

	t.Run("locked once leader step reached", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{ID: "est-1", Status: entities.StatusAuthLeader, Version: 4}, nil)

		_, err := uc.UpdateActivation(context.Background(), "est-1", admin, activation)
		if !errors.Is(err, ErrActivationLocked) {
			t.Fatalf("expected ErrActivationLocked, got %v", err)
		}
	})

	t.Run("success with version check", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{ID: "est-1", Status: entities.StatusAuthResident, Version: 2}, nil)
		m.repo.EXPECT().UpdateActivation(gomock.Any(), "est-1", activation, int64(2)).
			Return(entities.Estimation{ID: "est-1", Status: entities.StatusAuthResident, Activation: activation, Version: 3}, nil)

		res, err := uc.UpdateActivation(context.Background(), "est-1", admin, activation)
		if err != nil || res.Activation != activation || res.Version != 3 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("concurrent modification", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{ID: "est-1", Status: entities.StatusRegistered, Version: 1}, nil)
		m.repo.EXPECT().UpdateActivation(gomock.Any(), "est-1", activation, int64(1)).Return(entities.Estimation{}, interfaces.ErrConcurrentModification)

		_, err := uc.UpdateActivation(context.Background(), "est-1", admin, activation)
		if !errors.Is(err, interfaces.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestEstimationUseCase_GetHistory(t *testing.T) {
	uc, m := newEstimationUseCaseForTest(t)
	created := fixedNow.Add(-72 * time.Hour)
	leaderAt := created.Add(40 * time.Hour)
	signer := "Lucia Leader"
	e := entities.Estimation{
		ID:         "est-1",
		Status:     entities.StatusAuthLeader,
		Activation: entities.RoleActivation{LeaderActive: true},
		Resident:   entities.Signature{ApprovedAt: &leaderAt, SignedBy: &signer, Inherited: true},
		Superintendent: entities.Signature{
			ApprovedAt: &leaderAt, SignedBy: &signer, Inherited: true,
		},
		Leader:    entities.Signature{ApprovedAt: &leaderAt, SignedBy: &signer},
		Version:   2,
		CreatedAt: created,
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
	m.history.EXPECT().ListByEstimationID(gomock.Any(), "est-1").Return([]entities.ApprovalHistoryEntry{
		{ID: "h1", EstimationID: "est-1", Status: entities.StatusAuthLeader, Role: entities.RoleLeader, UserName: signer, Timestamp: leaderAt},
	}, nil)

	h, err := uc.GetHistory(context.Background(), "est-1", entities.RoleLeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Entries) != 1 || !h.Entries[0].Delayed {
		t.Fatalf("expected one delayed entry, got %+v", h.Entries)
	}
	if !h.Stalled {
		t.Fatalf("estimation idle for 24h+ must be stalled")
	}
	if h.ProgressPercent != 42 {
		t.Fatalf("expected 42%%, got %d", h.ProgressPercent)
	}
	if len(h.Steps) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(h.Steps))
	}
	resident := h.Steps[1]
	if !resident.Completed || resident.Approver == nil || !resident.Approver.Inherited || resident.Approver.UserName != signer {
		t.Fatalf("auth_resident must be credited to the inheriting leader: %+v", resident)
	}
	if h.Steps[0].Approver != nil {
		t.Fatalf("registered has no approver")
	}
	if h.Steps[4].Completed {
		t.Fatalf("validated_compras is not completed yet")
	}
}

func TestEstimationUseCase_GetHistory_HiddenFromViewer(t *testing.T) {
	uc, m := newEstimationUseCaseForTest(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{
		ID: "est-1", Status: entities.StatusAuthLeader, Activation: entities.AllRolesActive(),
	}, nil)
	m.history.EXPECT().ListByEstimationID(gomock.Any(), gomock.Any()).Times(0)

	if _, err := uc.GetHistory(context.Background(), "est-1", entities.RolePagos); !errors.Is(err, ErrEstimationNotFound) {
		t.Fatalf("expected ErrEstimationNotFound, got %v", err)
	}
}

func TestEstimationUseCase_ProjectSummary(t *testing.T) {
	t.Run("aggregates by status", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		recent := fixedNow.Add(-time.Hour)
		old := fixedNow.Add(-48 * time.Hour)
		m.repo.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Estimation{
			{ID: "a", Status: entities.StatusRegistered, Amount: 100, CreatedAt: old},
			{ID: "b", Status: entities.StatusRegistered, Amount: 50, CreatedAt: recent},
			{ID: "c", Status: entities.StatusPaid, Amount: 25, CreatedAt: old},
			{ID: "d", Status: entities.StatusAuthResident, Amount: 10, CreatedAt: old, Resident: entities.Signature{ApprovedAt: &recent}},
		}, nil)
		m.history.EXPECT().ListByEstimationID(gomock.Any(), gomock.Any()).Times(0)

		s, err := uc.ProjectSummary(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Total != 4 || s.TotalAmount != 185 || s.Stalled != 1 {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if got := s.ByStatus[entities.StatusRegistered]; got.Count != 2 || got.Amount != 150 {
			t.Fatalf("unexpected registered bucket: %+v", got)
		}
	})

	t.Run("corrupted status", func(t *testing.T) {
		uc, m := newEstimationUseCaseForTest(t)
		m.repo.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.Estimation{{ID: "x", Status: "lost"}}, nil)

		_, err := uc.ProjectSummary(context.Background(), "p-1")
		if !errors.Is(err, entities.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})
}
