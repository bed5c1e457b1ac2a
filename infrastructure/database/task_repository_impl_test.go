package database

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	"task-manager-api/domain/models"
	"task-manager-api/domain/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDatabase(DatabaseConfig{
		Driver:   DriverSQLite,
		Path:     ":memory:",
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func newTask(title string, due time.Time) *models.Task {
	return &models.Task{
		Title:       title,
		Description: strPtr("Test description"),
		DueDate:     due,
		CreateDate:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Status:      models.TaskStatusNotDone,
		Priority:    models.TaskPriorityHigh,
		Category:    strPtr("Work"),
	}
}

func mustCreate(t *testing.T, repo repositories.TaskRepository, task *models.Task) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("create %q: %v", task.Title, err)
	}
	return id
}

func TestTaskRepository_CreateAndGetByID(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	due := time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC)
	in := newTask("Test Task", due)

	id, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Test Task" || *got.Description != "Test description" || *got.Category != "Work" {
		t.Errorf("text fields mismatch: %+v", got)
	}
	if got.Status != models.TaskStatusNotDone || got.Priority != models.TaskPriorityHigh {
		t.Errorf("enum fields mismatch: %s/%s", got.Status, got.Priority)
	}
	if !got.DueDate.Equal(due) {
		t.Errorf("due date = %v, want %v", got.DueDate, due)
	}
	if !got.CreateDate.Equal(in.CreateDate) {
		t.Errorf("create date = %v, want %v", got.CreateDate, in.CreateDate)
	}
}

func TestTaskRepository_CreateOptionalFieldsNull(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := newTask("Bare", time.Now().UTC().Truncate(time.Second))
	task.Description = nil
	task.Category = nil

	id := mustCreate(t, repo, task)
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != nil || got.Category != nil {
		t.Errorf("expected NULL optional fields, got %v / %v", got.Description, got.Category)
	}
}

func TestTaskRepository_CreateRejectsOutOfDomainEnums(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := newTask("Bad status", time.Now())
	task.Status = "bogus"
	if _, err := repo.Create(ctx, task); !errors.Is(err, repositories.ErrInvalidTask) {
		t.Errorf("status: expected ErrInvalidTask, got %v", err)
	}

	task = newTask("Bad priority", time.Now())
	task.Priority = "urgent"
	if _, err := repo.Create(ctx, task); !errors.Is(err, repositories.ErrInvalidTask) {
		t.Errorf("priority: expected ErrInvalidTask, got %v", err)
	}

	count, err := repo.Count(ctx, "")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("rejected tasks were persisted: count=%d", count)
	}
}

func TestTaskRepository_GetByIDNotFound(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 4242)
	if !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_GetAllSearchAndSort(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	later := time.Date(2025, 1, 21, 15, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC)
	mustCreate(t, repo, newTask("Task Two", later))
	mustCreate(t, repo, newTask("Task One", earlier))

	all, err := repo.GetAll(ctx, models.TaskQuery{Sort: models.SortByDueDate, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}
	if all[0].Title != "Task One" || all[1].Title != "Task Two" {
		t.Errorf("due_date order = %q, %q", all[0].Title, all[1].Title)
	}

	natural, err := repo.GetAll(ctx, models.TaskQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if natural[0].Title != "Task Two" {
		t.Errorf("default order should be insertion order, first = %q", natural[0].Title)
	}

	found, err := repo.GetAll(ctx, models.TaskQuery{Search: "One", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll search: %v", err)
	}
	if len(found) != 1 || found[0].Title != "Task One" {
		t.Errorf("search One returned %d tasks", len(found))
	}

	n, err := repo.Count(ctx, "One")
	if err != nil || n != 1 {
		t.Errorf("Count(One) = %d, %v", n, err)
	}
}

func TestTaskRepository_GetAllSearchIsLiteral(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, newTask("100% done", time.Now()))
	mustCreate(t, repo, newTask("1000 things", time.Now()))
	mustCreate(t, repo, newTask("snake_case", time.Now()))
	mustCreate(t, repo, newTask("snakeXcase", time.Now()))

	tests := []struct {
		search string
		want   int
	}{
		{"%", 1},
		{"0%", 1},
		{"_", 1},
		{"e_c", 1},
		{"!", 0},
		{"' OR 1=1 --", 0},
	}
	for _, tt := range tests {
		got, err := repo.GetAll(ctx, models.TaskQuery{Search: tt.search, Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("GetAll(%q): %v", tt.search, err)
		}
		if len(got) != tt.want {
			t.Errorf("search %q matched %d tasks, want %d", tt.search, len(got), tt.want)
		}
	}
}

func TestTaskRepository_GetAllPagination(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, newTask("first", time.Now()))
	mustCreate(t, repo, newTask("second", time.Now()))

	page2, err := repo.GetAll(ctx, models.TaskQuery{Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(page2) != 1 || page2[0].Title != "second" {
		t.Fatalf("page 2 limit 1 = %v", page2)
	}

	// page and limit below one are treated as one
	clamped, err := repo.GetAll(ctx, models.TaskQuery{Page: 0, Limit: -3})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(clamped) != 1 || clamped[0].Title != "first" {
		t.Fatalf("clamped page = %v", clamped)
	}

	beyond, err := repo.GetAll(ctx, models.TaskQuery{Page: 5, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if beyond == nil || len(beyond) != 0 {
		t.Errorf("expected empty non-nil slice past the end, got %#v", beyond)
	}
}

func TestTaskRepository_GetAllFarPages(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, newTask("first", time.Now()))
	mustCreate(t, repo, newTask("second", time.Now()))

	tests := []struct {
		name  string
		query models.TaskQuery
	}{
		{"max page limit one", models.TaskQuery{Page: math.MaxInt, Limit: 1}},
		{"max page limit two", models.TaskQuery{Page: math.MaxInt, Limit: 2}},
		{"max page max limit", models.TaskQuery{Page: math.MaxInt, Limit: math.MaxInt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetAll(ctx, tt.query)
			if err != nil {
				t.Fatalf("GetAll: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("GetAll(%+v) = %v, want empty page", tt.query, got)
			}
		})
	}
}

func TestTaskRepository_UpdatePartial(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	orig := newTask("Original Task", time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC))
	id := mustCreate(t, repo, orig)

	title := "Updated Task"
	if err := repo.Update(ctx, id, models.TaskPatch{Title: &title}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != title {
		t.Errorf("title = %q", got.Title)
	}
	if *got.Description != *orig.Description || *got.Category != *orig.Category ||
		got.Status != orig.Status || got.Priority != orig.Priority ||
		!got.DueDate.Equal(orig.DueDate) || !got.CreateDate.Equal(orig.CreateDate) {
		t.Errorf("untouched fields changed: %+v", got)
	}

	// rewriting identical values still succeeds
	if err := repo.Update(ctx, id, models.TaskPatch{Title: &title}); err != nil {
		t.Errorf("idempotent update: %v", err)
	}
}

func TestTaskRepository_UpdateAllFields(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	id := mustCreate(t, repo, newTask("Original", time.Now().UTC().Truncate(time.Second)))

	due := time.Date(2025, 1, 25, 18, 0, 0, 0, time.UTC)
	status := models.TaskStatusDone
	priority := models.TaskPriorityLow
	patch := models.TaskPatch{
		Title:       strPtr("Updated"),
		Description: strPtr("Updated description"),
		DueDate:     &due,
		Status:      &status,
		Priority:    &priority,
		Category:    strPtr("Home"),
	}
	if err := repo.Update(ctx, id, patch); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := repo.GetByID(ctx, id)
	if got.Title != "Updated" || *got.Description != "Updated description" || *got.Category != "Home" ||
		got.Status != models.TaskStatusDone || got.Priority != models.TaskPriorityLow || !got.DueDate.Equal(due) {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestTaskRepository_UpdateFailures(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	id := mustCreate(t, repo, newTask("Task", time.Now()))

	if err := repo.Update(ctx, id, models.TaskPatch{}); !errors.Is(err, repositories.ErrNoFieldsToUpdate) {
		t.Errorf("empty patch: expected ErrNoFieldsToUpdate, got %v", err)
	}

	bad := models.TaskPriority("urgent")
	if err := repo.Update(ctx, id, models.TaskPatch{Priority: &bad}); !errors.Is(err, repositories.ErrInvalidTask) {
		t.Errorf("bad priority: expected ErrInvalidTask, got %v", err)
	}

	title := "ghost"
	if err := repo.Update(ctx, id+100, models.TaskPatch{Title: &title}); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("missing row: expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	id := mustCreate(t, repo, newTask("Doomed", time.Now()))

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("deleted task still readable: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("second delete: expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_StoreFailureIsUniform(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	if err := db.Migrator().DropTable(&models.Task{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, err := repo.Create(ctx, newTask("x", time.Now())); !errors.Is(err, repositories.ErrStoreFailure) {
		t.Errorf("Create: expected ErrStoreFailure, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, repositories.ErrStoreFailure) {
		t.Errorf("GetByID: expected ErrStoreFailure, got %v", err)
	}
	if _, err := repo.GetAll(ctx, models.TaskQuery{}); !errors.Is(err, repositories.ErrStoreFailure) {
		t.Errorf("GetAll: expected ErrStoreFailure, got %v", err)
	}
	title := "y"
	if err := repo.Update(ctx, 1, models.TaskPatch{Title: &title}); !errors.Is(err, repositories.ErrStoreFailure) {
		t.Errorf("Update: expected ErrStoreFailure, got %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, repositories.ErrStoreFailure) {
		t.Errorf("Delete: expected ErrStoreFailure, got %v", err)
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"One":   "%One%",
		"50%":   "%50!%%",
		"a_b":   "%a!_b%",
		"wow!":  "%wow!!%",
		"plain": "%plain%",
	}
	for in, want := range tests {
		if got := containsPattern(in); got != want {
			t.Errorf("containsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(DatabaseConfig{User: "db_user", Password: "db_password", Host: "localhost", Port: "3306", DBName: "tasks_db"})
	want := "db_user:db_password@tcp(localhost:3306)/tasks_db?charset=utf8mb4&clientFoundRows=true&loc=UTC&parseTime=true"
	if dsn != want {
		t.Errorf("mysqlDSN = %q\nwant      %q", dsn, want)
	}
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name         string
		cfg          DatabaseConfig
		wantUser     string
		wantPassword string
		wantHost     string
		wantPort     uint16
		wantDatabase string
	}{
		{
			name:         "empty password keeps dbname",
			cfg:          DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", DBName: "tasks_db", SSLMode: "disable"},
			wantUser:     "postgres",
			wantHost:     "localhost",
			wantPort:     5432,
			wantDatabase: "tasks_db",
		},
		{
			name:         "empty port uses server default",
			cfg:          DatabaseConfig{Host: "db.internal", User: "postgres", Password: "secret", DBName: "tasks_db", SSLMode: "disable"},
			wantUser:     "postgres",
			wantPassword: "secret",
			wantHost:     "db.internal",
			wantPort:     5432,
			wantDatabase: "tasks_db",
		},
		{
			name:         "punctuated password",
			cfg:          DatabaseConfig{Host: "localhost", Port: "6543", User: "app", Password: "p@ss w/rd=1", DBName: "tasks_db", SSLMode: "disable"},
			wantUser:     "app",
			wantPassword: "p@ss w/rd=1",
			wantHost:     "localhost",
			wantPort:     6543,
			wantDatabase: "tasks_db",
		},
		{
			name:         "empty sslmode",
			cfg:          DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", Password: "x", DBName: "tasks_db"},
			wantUser:     "postgres",
			wantPassword: "x",
			wantHost:     "localhost",
			wantPort:     5432,
			wantDatabase: "tasks_db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := postgresDSN(tt.cfg)
			parsed, err := pgx.ParseConfig(dsn)
			if err != nil {
				t.Fatalf("ParseConfig(%q): %v", dsn, err)
			}
			if parsed.User != tt.wantUser {
				t.Errorf("User = %q, want %q", parsed.User, tt.wantUser)
			}
			if parsed.Password != tt.wantPassword {
				t.Errorf("Password = %q, want %q", parsed.Password, tt.wantPassword)
			}
			if parsed.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", parsed.Host, tt.wantHost)
			}
			if parsed.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", parsed.Port, tt.wantPort)
			}
			if parsed.Database != tt.wantDatabase {
				t.Errorf("Database = %q, want %q", parsed.Database, tt.wantDatabase)
			}
			if tz := parsed.RuntimeParams["TimeZone"]; tz != "UTC" {
				t.Errorf("TimeZone = %q, want UTC", tz)
			}
		})
	}
}

func TestNewDatabaseUnsupportedDriver(t *testing.T) {
	if _, err := NewDatabase(DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
