package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"
	mock_interfaces "github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	testEnvironmentID = "e0v00000-0000-0000-0000-000000000001"
	testMerchantID    = "merchant-42"
)

func newMenuMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIMenuRepository, *mock_interfaces.MockICatalogRepository, *mock_interfaces.MockIEnvironmentRepository, *mock_interfaces.MockIImageJobRepository, *mock_interfaces.MockICatalogClient) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIMenuRepository(ctrl),
		mock_interfaces.NewMockICatalogRepository(ctrl),
		mock_interfaces.NewMockIEnvironmentRepository(ctrl),
		mock_interfaces.NewMockIImageJobRepository(ctrl),
		mock_interfaces.NewMockICatalogClient(ctrl)
}

func TestMenuUseCase_ImportMenu(t *testing.T) {
	t.Run("environment not found", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		envs.EXPECT().GetByID(gomock.Any(), testEnvironmentID).Return(entities.Environment{}, nil)

		_, err := uc.ImportMenu(context.Background(), testEnvironmentID, testMerchantID)
		if !errors.Is(err, ErrEnvironmentNotFound) {
			t.Fatalf("expected ErrEnvironmentNotFound, got %v", err)
		}
	})

	t.Run("fetch failure marks menu failed and activates nothing", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		envs.EXPECT().GetByID(gomock.Any(), testEnvironmentID).Return(entities.Environment{ID: testEnvironmentID}, nil)
		menus.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Menu{})).DoAndReturn(
			func(_ context.Context, m entities.Menu) (entities.Menu, error) {
				if m.MenuStatus != entities.MenuStatusScheduled {
					t.Fatalf("expected SCHEDULED, got %s", m.MenuStatus)
				}
				if m.IsActive {
					t.Fatalf("new menu must not start active")
				}
				return m, nil
			},
		)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusProcessing).Return(nil)
		client.EXPECT().FetchCatalog(gomock.Any(), testMerchantID).Return(interfaces.RemoteCatalog{}, errors.New("upstream 500"))
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusFailed).Return(nil)

		_, err := uc.ImportMenu(context.Background(), testEnvironmentID, testMerchantID)
		if err == nil || err.Error() != "upstream 500" {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("empty catalog marks menu failed", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		envs.EXPECT().GetByID(gomock.Any(), testEnvironmentID).Return(entities.Environment{ID: testEnvironmentID}, nil)
		menus.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Menu) (entities.Menu, error) { return m, nil },
		)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusProcessing).Return(nil)
		client.EXPECT().FetchCatalog(gomock.Any(), testMerchantID).Return(interfaces.RemoteCatalog{}, nil)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusFailed).Return(nil)

		_, err := uc.ImportMenu(context.Background(), testEnvironmentID, testMerchantID)
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("success materializes the tree and swaps activation", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		details := "com queijo"
		remote := interfaces.RemoteCatalog{
			Raw: []byte(`{"code":"200"}`),
			Categories: []interfaces.RemoteCategory{{
				Code: "CAT1",
				Name: "Lanches",
				Items: []interfaces.RemoteItem{{
					ID:          "ext-item-1",
					Code:        "X1",
					Description: "X-Burger",
					Details:     &details,
					UnitPrice:   25.9,
					NeedChoices: true,
					Choices: []interfaces.RemoteChoice{{
						Code: "CH1",
						Name: "Adicionais",
						Min:  0,
						Max:  2,
						GarnishItems: []interfaces.RemoteGarnishItem{{
							ID:          "ext-g-1",
							Description: "Bacon",
							UnitPrice:   4.5,
						}},
					}},
				}},
			}},
		}

		envs.EXPECT().GetByID(gomock.Any(), testEnvironmentID).Return(entities.Environment{ID: testEnvironmentID}, nil)
		menus.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Menu) (entities.Menu, error) { return m, nil },
		)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusProcessing).Return(nil)
		client.EXPECT().FetchCatalog(gomock.Any(), testMerchantID).Return(remote, nil)
		menus.EXPECT().SetRawCatalogData(gomock.Any(), gomock.Any(), []byte(`{"code":"200"}`)).Return(nil)
		menus.EXPECT().CreateCategory(gomock.Any(), gomock.AssignableToTypeOf(entities.MenuCategory{})).DoAndReturn(
			func(_ context.Context, c entities.MenuCategory) (entities.MenuCategory, error) {
				if c.Name != "Lanches" || c.ExternalCode != "CAT1" || !c.IsActive {
					t.Fatalf("unexpected category: %+v", c)
				}
				return c, nil
			},
		)
		menus.EXPECT().CreateItem(gomock.Any(), gomock.AssignableToTypeOf(entities.Item{})).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) {
				if it.UnitPrice != 2590 {
					t.Fatalf("expected 2590 cents, got %d", it.UnitPrice)
				}
				if it.UnitOriginalPrice == nil || *it.UnitOriginalPrice != 2590 {
					t.Fatalf("expected original price to default to unit price")
				}
				if it.Description != "X-Burger" || !it.NeedChoices {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)
		menus.EXPECT().CreateChoice(gomock.Any(), gomock.AssignableToTypeOf(entities.Choice{})).DoAndReturn(
			func(_ context.Context, ch entities.Choice) (entities.Choice, error) {
				if ch.Min != 0 || ch.Max != 2 || ch.Name != "Adicionais" {
					t.Fatalf("unexpected choice: %+v", ch)
				}
				return ch, nil
			},
		)
		menus.EXPECT().CreateGarnishItem(gomock.Any(), gomock.AssignableToTypeOf(entities.GarnishItem{})).DoAndReturn(
			func(_ context.Context, g entities.GarnishItem) (entities.GarnishItem, error) {
				if g.UnitPrice != 450 {
					t.Fatalf("expected 450 cents, got %d", g.UnitPrice)
				}
				if g.ExternalGarnishItemCode != "ext-g-1" {
					t.Fatalf("expected garnish code fallback to id, got %q", g.ExternalGarnishItemCode)
				}
				return g, nil
			},
		)
		gomock.InOrder(
			menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusCompleted).Return(nil),
			menus.EXPECT().DeactivateAllByEnvironmentID(gomock.Any(), testEnvironmentID).Return(nil),
			menus.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(nil),
			menus.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Menu{ID: "menu-1", IsActive: true, MenuStatus: entities.MenuStatusCompleted}, nil),
		)

		res, err := uc.ImportMenu(context.Background(), testEnvironmentID, testMerchantID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsActive || res.MenuStatus != entities.MenuStatusCompleted {
			t.Fatalf("expected active completed menu, got %+v", res)
		}
	})

	t.Run("item image failure does not abort the import", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		logo := "/pictures/burger.png"
		remote := interfaces.RemoteCatalog{
			Raw: []byte(`{}`),
			Categories: []interfaces.RemoteCategory{{
				Code: "CAT1",
				Name: "Lanches",
				Items: []interfaces.RemoteItem{{
					ID:          "ext-item-1",
					Description: "X-Burger",
					LogoURL:     &logo,
					UnitPrice:   10,
				}},
			}},
		}

		envs.EXPECT().GetByID(gomock.Any(), testEnvironmentID).Return(entities.Environment{ID: testEnvironmentID}, nil)
		menus.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Menu) (entities.Menu, error) { return m, nil },
		)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusProcessing).Return(nil)
		client.EXPECT().FetchCatalog(gomock.Any(), testMerchantID).Return(remote, nil)
		menus.EXPECT().SetRawCatalogData(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		menus.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.MenuCategory) (entities.MenuCategory, error) { return c, nil },
		)
		menus.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) { return it, nil },
		)
		jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ImageProcessingJob{})).DoAndReturn(
			func(_ context.Context, j entities.ImageProcessingJob) (entities.ImageProcessingJob, error) {
				if j.Status != entities.JobStatusProcessing || j.ImageURL != logo {
					t.Fatalf("unexpected job: %+v", j)
				}
				return j, nil
			},
		)
		client.EXPECT().FetchImageBase64(gomock.Any(), logo).Return("", errors.New("404"))
		jobs.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), "404").Return(nil)
		menus.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.MenuStatusCompleted).Return(nil)
		menus.EXPECT().DeactivateAllByEnvironmentID(gomock.Any(), testEnvironmentID).Return(nil)
		menus.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(nil)
		menus.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Menu{ID: "menu-1"}, nil)

		if _, err := uc.ImportMenu(context.Background(), testEnvironmentID, testMerchantID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMenuUseCase_Reads(t *testing.T) {
	t.Run("menu not found", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		menus.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Menu{}, nil)

		_, err := uc.GetMenuByID(context.Background(), "m-1")
		if !errors.Is(err, ErrMenuNotFound) {
			t.Fatalf("expected ErrMenuNotFound, got %v", err)
		}
	})

	t.Run("no active menu", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		menus.EXPECT().GetActiveByEnvironmentID(gomock.Any(), testEnvironmentID).Return(entities.Menu{}, nil)

		_, err := uc.GetActiveMenuByEnvironment(context.Background(), testEnvironmentID)
		if !errors.Is(err, ErrMenuNotFound) {
			t.Fatalf("expected ErrMenuNotFound, got %v", err)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl, menus, catalog, envs, jobs, client := newMenuMocks(t)
		defer ctrl.Finish()
		uc := NewMenuUseCase(menus, catalog, envs, jobs, client)

		catalog.EXPECT().GetItemByID(gomock.Any(), "i-1").Return(entities.Item{}, nil)

		_, err := uc.GetItemByID(context.Background(), "i-1")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestCentsFromPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{10, 1000},
		{25.9, 2590},
		{4.5, 450},
		{0.1, 10},
		{19.99, 1999},
		{3.33, 333},
	}
	for _, c := range cases {
		if got := centsFromPrice(c.in); got != c.want {
			t.Errorf("centsFromPrice(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestMapProductTags(t *testing.T) {
	portion, dietary, dish := mapProductTags([]interfaces.RemoteProductTag{
		{Group: "PORTION_SIZE", Tags: []string{"SERVES_2"}},
		{Group: "DIETARY_RESTRICTIONS", Tags: []string{"VEGAN", "NOT_A_TAG"}},
		{Group: "DISH_CLASSIFICATION", Tags: []string{"FROSTY"}},
		{Group: "UNKNOWN_GROUP", Tags: []string{"SERVES_4"}},
	})
	if portion != entities.PortionSizeServes2 {
		t.Fatalf("expected SERVES_2, got %s", portion)
	}
	if len(dietary) != 1 || dietary[0] != "VEGAN" {
		t.Fatalf("expected unknown dietary tags filtered, got %v", dietary)
	}
	if len(dish) != 1 || dish[0] != "FROSTY" {
		t.Fatalf("expected FROSTY, got %v", dish)
	}

	portion, dietary, dish = mapProductTags(nil)
	if portion != entities.PortionSizeNotApplicable || dietary != nil || dish != nil {
		t.Fatalf("expected defaults for no tags, got %s %v %v", portion, dietary, dish)
	}
}
