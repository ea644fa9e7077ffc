package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/embarques/fletes/internal/domain"
)

// FreightRepo defines the persistence operations for freights.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type FreightRepo interface {
	// Create inserts a new freight and returns the persisted record with the
	// DB-generated id and created_at populated.
	Create(ctx context.Context, f domain.Freight) (domain.Freight, error)

	// GetByID retrieves a single freight joined with its supplier and
	// destination. Returns domain.ErrNotFound if no freight has that id.
	GetByID(ctx context.Context, id int64) (domain.FreightView, error)

	// ListPaged returns one page of freights ordered by id descending and the
	// total number of freights.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error)

	// Update overwrites the mutable fields of an existing freight.
	// Returns domain.ErrNotFound if no freight has that id.
	Update(ctx context.Context, f domain.Freight) (domain.Freight, error)

	// Delete removes a freight by id. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// ListByPeriod returns the freights whose registration date lies in the
	// query window, in the query's order.
	ListByPeriod(ctx context.Context, q domain.FreightQuery) ([]domain.FreightView, error)

	// DistinctMonths returns every (year, month) holding at least one dated
	// freight, ordered year descending then month descending.
	DistinctMonths(ctx context.Context) ([]domain.YearMonth, error)
}

// pgFreightRepo is the Postgres implementation of FreightRepo.
type pgFreightRepo struct {
	db db
}

// NewFreightRepo constructs a FreightRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewFreightRepo(db db) FreightRepo {
	return &pgFreightRepo{db: db}
}

const freightColumns = `f.id, f.id_supplier, f.id_destination, f.highway_expense_cost,
		f.cost_of_stay, f.registration_date, f.trip_number, f.created_at`

const viewSelect = `
		SELECT ` + freightColumns + `,
		       s.supplier_name, d.destination_name, d.cost
		FROM fletes f
		LEFT JOIN suppliers s    ON s.id = f.id_supplier
		LEFT JOIN destinations d ON d.id = f.id_destination`

func freightArgs(f domain.Freight) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id_supplier":          f.SupplierID, // nil becomes NULL
		"id_destination":       f.DestinationID,
		"highway_expense_cost": f.HighwayExpenseCost,
		"cost_of_stay":         f.CostOfStay,
		"registration_date":    f.RegistrationDate,
		"trip_number":          f.TripNumber,
	}
}

// Create inserts a new freight row and returns the full persisted record.
func (r *pgFreightRepo) Create(ctx context.Context, f domain.Freight) (domain.Freight, error) {
	const q = `
		INSERT INTO fletes AS f (id_supplier, id_destination, highway_expense_cost,
		                         cost_of_stay, registration_date, trip_number)
		VALUES (@id_supplier, @id_destination, @highway_expense_cost,
		        @cost_of_stay, @registration_date, @trip_number)
		RETURNING ` + freightColumns

	result, err := scanFreight(r.db.QueryRow(ctx, q, freightArgs(f)))
	if err != nil {
		return domain.Freight{}, fmt.Errorf("repo.FreightRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a freight view by primary key.
func (r *pgFreightRepo) GetByID(ctx context.Context, id int64) (domain.FreightView, error) {
	const q = viewSelect + `
		WHERE f.id = @id`

	result, err := scanFreightView(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.FreightView{}, fmt.Errorf("repo.FreightRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of freight views, newest id first.
func (r *pgFreightRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM fletes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.FreightRepo.ListPaged: count: %w", err)
	}

	const q = viewSelect + `
		ORDER BY f.id DESC
		LIMIT @limit OFFSET @offset`

	views, err := r.queryViews(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.FreightRepo.ListPaged: %w", err)
	}
	return views, total, nil
}

// Update overwrites the mutable fields of a freight and returns the updated record.
// id and created_at are never changed.
func (r *pgFreightRepo) Update(ctx context.Context, f domain.Freight) (domain.Freight, error) {
	const q = `
		UPDATE fletes AS f
		SET id_supplier          = @id_supplier,
		    id_destination       = @id_destination,
		    highway_expense_cost = @highway_expense_cost,
		    cost_of_stay         = @cost_of_stay,
		    registration_date    = @registration_date,
		    trip_number          = @trip_number
		WHERE f.id = @id
		RETURNING ` + freightColumns

	args := freightArgs(f)
	args["id"] = f.ID

	result, err := scanFreight(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Freight{}, fmt.Errorf("repo.FreightRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a freight by primary key.
func (r *pgFreightRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM fletes WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FreightRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FreightRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListByPeriod returns the freight views registered inside [q.From, q.To).
// The ORDER BY clause comes from q.Order so SQL and Go agree on ordering.
func (r *pgFreightRepo) ListByPeriod(ctx context.Context, q domain.FreightQuery) ([]domain.FreightView, error) {
	sql := viewSelect + `
		WHERE f.registration_date >= @from
		  AND f.registration_date <  @to
		ORDER BY ` + q.Order.SQL()

	views, err := r.queryViews(ctx, sql, pgx.NamedArgs{"from": q.From, "to": q.To})
	if err != nil {
		return nil, fmt.Errorf("repo.FreightRepo.ListByPeriod: %w", err)
	}
	return views, nil
}

// DistinctMonths enumerates the months that hold dated freights, newest first.
func (r *pgFreightRepo) DistinctMonths(ctx context.Context) ([]domain.YearMonth, error) {
	const q = `
		SELECT DISTINCT
		       EXTRACT(YEAR  FROM registration_date)::int AS year,
		       EXTRACT(MONTH FROM registration_date)::int AS month
		FROM fletes
		WHERE registration_date IS NOT NULL
		ORDER BY year DESC, month DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.FreightRepo.DistinctMonths: %w", err)
	}
	defer rows.Close()

	months := []domain.YearMonth{}
	for rows.Next() {
		var ym domain.YearMonth
		if err := rows.Scan(&ym.Year, &ym.Month); err != nil {
			return nil, fmt.Errorf("repo.FreightRepo.DistinctMonths: scan: %w", err)
		}
		months = append(months, ym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FreightRepo.DistinctMonths: rows: %w", err)
	}
	return months, nil
}

func (r *pgFreightRepo) queryViews(ctx context.Context, sql string, args pgx.NamedArgs) ([]domain.FreightView, error) {
	rows, err := r.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []domain.FreightView{}
	for rows.Next() {
		v, err := scanFreightView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return views, nil
}

// freightScan holds the nullable column targets shared by scanFreight and
// scanFreightView.
type freightScan struct {
	id               int64
	supplierID       pgtype.Int8
	destinationID    pgtype.Int8
	highway          pgtype.Int8
	stay             pgtype.Int8
	registrationDate pgtype.Timestamp
	tripNumber       pgtype.Int8
	createdAt        pgtype.Timestamp
}

func (fs *freightScan) targets() []any {
	return []any{&fs.id, &fs.supplierID, &fs.destinationID, &fs.highway,
		&fs.stay, &fs.registrationDate, &fs.tripNumber, &fs.createdAt}
}

func (fs *freightScan) freight() domain.Freight {
	return domain.Freight{
		ID:                 fs.id,
		SupplierID:         int8Ptr(fs.supplierID),
		DestinationID:      int8Ptr(fs.destinationID),
		HighwayExpenseCost: int8Ptr(fs.highway),
		CostOfStay:         int8Ptr(fs.stay),
		RegistrationDate:   timestampPtr(fs.registrationDate),
		TripNumber:         int8Ptr(fs.tripNumber),
		CreatedAt:          fs.createdAt.Time,
	}
}

// scanFreight maps a fletes row into a domain.Freight.
func scanFreight(s scanner) (domain.Freight, error) {
	var fs freightScan
	if err := s.Scan(fs.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Freight{}, domain.ErrNotFound
		}
		return domain.Freight{}, err
	}
	return fs.freight(), nil
}

// scanFreightView maps a joined viewSelect row into a domain.FreightView.
func scanFreightView(s scanner) (domain.FreightView, error) {
	var (
		fs              freightScan
		supplierName    pgtype.Text
		destinationName pgtype.Text
		destinationCost pgtype.Int8
	)
	dest := append(fs.targets(), &supplierName, &destinationName, &destinationCost)
	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FreightView{}, domain.ErrNotFound
		}
		return domain.FreightView{}, err
	}
	return domain.FreightView{
		Freight:         fs.freight(),
		SupplierName:    textPtr(supplierName),
		DestinationName: textPtr(destinationName),
		DestinationCost: int8Ptr(destinationCost),
	}, nil
}
