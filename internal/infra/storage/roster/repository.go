package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/psqlbuilder"
)

// Repository справочники салона: сотрудники (колонки сетки) и услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEmployees возвращает сотрудников в порядке колонок сетки
func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Resource, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"short_name",
		"full_name",
		"first_name",
		"last_name",
		"photo_url",
		"color",
	).
		From("employees").
		OrderBy("sort_order", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		var (
			res                                  domain.Resource
			shortName, fullName                  sql.NullString
			firstName, lastName, photoURL, color sql.NullString
		)
		if err := rows.Scan(&res.ID, &shortName, &fullName, &firstName, &lastName, &photoURL, &color); err != nil {
			return nil, fmt.Errorf("%w: ListEmployees - scan row: %v", ErrScanRow, err)
		}
		res.ShortName = refFromNull(shortName)
		res.FullName = refFromNull(fullName)
		res.FirstName = refFromNull(firstName)
		res.LastName = refFromNull(lastName)
		res.PhotoURL = refFromNull(photoURL)
		res.Color = refFromNull(color)
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

// ListServices возвращает каталог услуг
// Длительность и цена могут быть NULL: значения по умолчанию подставляет агрегатор
func (r *Repository) ListServices(ctx context.Context) ([]domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"service_name",
		"title",
		"duration_minutes",
		"price",
	).
		From("services").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ServiceOffering, 0)
	for rows.Next() {
		var (
			s                        domain.ServiceOffering
			name, serviceName, title sql.NullString
			durationMinutes, price   sql.NullFloat64
		)
		if err := rows.Scan(&s.ID, &name, &serviceName, &title, &durationMinutes, &price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		s.Name = refFromNull(name)
		s.ServiceName = refFromNull(serviceName)
		s.Title = refFromNull(title)
		s.DurationMinutes = floatFromNull(durationMinutes)
		s.Price = floatFromNull(price)
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func refFromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
