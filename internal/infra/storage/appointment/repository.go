package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/psqlbuilder"
)

const tableName = "appointments"

var columns = []string{
	"id",
	"title",
	"start_time",
	"end_time",
	"employee_id",
	"client_id",
	"client_name",
	"service_ids",
	"status",
	"price",
	"payment_method",
	"notes",
}

// Repository репозиторий записей расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDate возвращает записи, начинающиеся в указанный день (YYYY-MM-DD)
// start_time хранится строкой "YYYY-MM-DD HH:MM", поэтому фильтр по префиксу
func (r *Repository) ListByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Like{"start_time": date + " %"}).
		OrderBy("start_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// Create сохраняет новую запись; пустой ID заменяется сгенерированным UUID
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = domain.DefaultStatus
	}
	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			a.ID,
			a.Title,
			a.StartTime,
			a.EndTime,
			nullableRef(a.ResourceID),
			nullableRef(a.ClientID),
			nullableRef(a.ClientName),
			pq.Array(serviceIDs),
			string(a.Status),
			a.Price,
			nullableString(a.PaymentMethod),
			nullableString(a.Notes),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Update частично обновляет запись: в SET попадают только заданные поля
func (r *Repository) Update(ctx context.Context, id string, upd domain.AppointmentUpdate) error {
	if upd.IsEmpty() {
		return ErrEmptyUpdate
	}

	builder := psqlbuilder.Update(tableName)
	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.StartTime != nil {
		builder = builder.Set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		builder = builder.Set("end_time", *upd.EndTime)
	}
	if upd.ResourceID != nil {
		builder = builder.Set("employee_id", nullableString(*upd.ResourceID))
	}
	if upd.ClientID != nil {
		builder = builder.Set("client_id", nullableString(*upd.ClientID))
	}
	if upd.ServiceIDs != nil {
		builder = builder.Set("service_ids", pq.Array(upd.ServiceIDs))
	}
	if upd.Status != nil {
		builder = builder.Set("status", string(*upd.Status))
	}
	switch {
	case upd.Price != nil:
		builder = builder.Set("price", *upd.Price)
	case upd.ClearPrice:
		builder = builder.Set("price", nil)
	}
	if upd.PaymentMethod != nil {
		builder = builder.Set("payment_method", nullableString(*upd.PaymentMethod))
	}
	if upd.Notes != nil {
		builder = builder.Set("notes", nullableString(*upd.Notes))
	}

	query, args, err := builder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a                    domain.Appointment
		employeeID, clientID sql.NullString
		clientName, status   sql.NullString
		paymentMethod, notes sql.NullString
		price                sql.NullFloat64
		serviceIDs           []string
	)

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.StartTime,
		&a.EndTime,
		&employeeID,
		&clientID,
		&clientName,
		pq.Array(&serviceIDs),
		&status,
		&price,
		&paymentMethod,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	record := domain.AppointmentRecord{
		ID:            a.ID,
		Title:         a.Title,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		EmployeeID:    refFromNull(employeeID),
		ClientID:      refFromNull(clientID),
		ClientName:    refFromNull(clientName),
		ServiceIDs:    serviceIDs,
		Status:        refFromNull(status),
		PaymentMethod: refFromNull(paymentMethod),
		Notes:         refFromNull(notes),
	}
	if price.Valid {
		v := price.Float64
		record.Price = &v
	}

	appointment := record.ToAppointment()
	return &appointment, nil
}

func refFromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableRef(v *string) interface{} {
	if v == nil {
		return nil
	}
	return nullableString(*v)
}

func nullableString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
