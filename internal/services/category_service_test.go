package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"monexel/internal/models"
	"monexel/internal/pagination"
	"monexel/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("user_owned", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory("Groceries", "weekly shopping", models.UserOwner(user.ID))
		testutil.AssertNoError(t, err)

		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		ownerID, ok := category.CreatedBy.UserID()
		if !ok || ownerID != user.ID {
			t.Errorf("expected owner %d, got %v (%v)", user.ID, ownerID, ok)
		}
	})

	t.Run("system_owned", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory("Utilities", "", models.SystemOwner())
		testutil.AssertNoError(t, err)
		if !category.CreatedBy.IsSystem() {
			t.Error("expected system-owned category")
		}
	})

	t.Run("duplicate_name_across_owners", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory("Travel", "", models.UserOwner(user1.ID))
		testutil.AssertNoError(t, err)

		// Names are unique system-wide, not per owner.
		_, err = svc.CreateCategory("Travel", "", models.UserOwner(user2.ID))
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("unknown_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Orphaned", "", models.UserOwner(99999))
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("", "", models.SystemOwner())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCategories(t *testing.T) {
	t.Run("by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestCategory(t, db, user.ID)

		category, err := svc.GetCategoryByID(created.ID)
		testutil.AssertNoError(t, err)
		if category.Name != created.Name {
			t.Errorf("expected name %q, got %q", created.Name, category.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetCategoryByID(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("all_includes_system_and_private", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestSystemCategory(t, db)

		result, err := svc.GetAllCategories(pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 categories, got %d", result.TotalItems)
		}
	})

	t.Run("by_user_excludes_others", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		mine := testutil.CreateTestCategory(t, db, user1.ID)
		testutil.CreateTestCategory(t, db, user2.ID)
		testutil.CreateTestSystemCategory(t, db)

		result, err := svc.GetCategoriesByUser(user1.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Fatalf("expected 1 category, got %d", result.TotalItems)
		}
		if result.Data[0].ID != mine.ID {
			t.Errorf("expected category %d, got %d", mine.ID, result.Data[0].ID)
		}
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestCategory(t, db, user.ID)

		updated, err := svc.UpdateCategory(created.ID, "Renamed", "new description")
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" {
			t.Errorf("expected name %q, got %q", "Renamed", updated.Name)
		}
	})

	t.Run("rename_to_taken_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		first := testutil.CreateTestCategory(t, db, user.ID)
		second := testutil.CreateTestCategory(t, db, user.ID)

		_, err := svc.UpdateCategory(second.ID, first.Name, "")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.UpdateCategory(99999, "Ghost", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestCategory(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteCategory(created.ID))

		_, err := svc.GetCategoryByID(created.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("expense_keeps_reference", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		expenseSvc := NewExpenseService(db, NewBalanceService(db))
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)
		expense := testutil.CreateTestExpense(t, db, user.ID, category.ID, decimal.RequireFromString("25.00"), testutil.Date(2025, time.March, 10))

		testutil.AssertNoError(t, svc.DeleteCategory(category.ID))

		kept, err := expenseSvc.GetExpenseByID(user.ID, expense.ID)
		testutil.AssertNoError(t, err)
		if kept.CategoryID != category.ID {
			t.Errorf("expected expense to keep category %d, got %d", category.ID, kept.CategoryID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
