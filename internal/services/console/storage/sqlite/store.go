package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sqlitemigrate "github.com/inex/ixp-console/internal/platform/storage/sqlitemigrate"
	"github.com/inex/ixp-console/internal/services/console/storage"
	"github.com/inex/ixp-console/internal/services/console/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

const interfaceColumns = `id, customer_name, abbreviation, asn, protocol, vlan_id, vlan_tag, address, traffic_bits, traffic_bytes, as_macro`

// Store provides a SQLite-backed store implementing console storage interfaces.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if _, err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListInterfaces returns every interface ordered by customer, VLAN and protocol.
func (s *Store) ListInterfaces(ctx context.Context) ([]storage.VlanInterface, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+interfaceColumns+` FROM vlan_interfaces ORDER BY abbreviation, vlan_id, protocol, id`)
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	defer rows.Close()

	var out []storage.VlanInterface
	for rows.Next() {
		iface, err := scanInterface(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, iface)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interfaces: %w", err)
	}
	return out, nil
}

// GetInterface returns one interface or storage.ErrNotFound.
func (s *Store) GetInterface(ctx context.Context, id int64) (storage.VlanInterface, error) {
	if err := s.ready(ctx); err != nil {
		return storage.VlanInterface{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+interfaceColumns+` FROM vlan_interfaces WHERE id = ?`, id)
	iface, err := scanInterface(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.VlanInterface{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.VlanInterface{}, err
	}
	return iface, nil
}

// PutInterface inserts iface when its ID is zero and updates it otherwise.
// It returns the stored ID.
func (s *Store) PutInterface(ctx context.Context, iface storage.VlanInterface) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(iface.Abbreviation) == "" {
		return 0, fmt.Errorf("abbreviation is required")
	}
	if iface.Protocol != 4 && iface.Protocol != 6 {
		return 0, fmt.Errorf("protocol must be 4 or 6, got %d", iface.Protocol)
	}
	updatedAt := s.now().UTC().Format(timeFormat)
	macro := encodeMacro(iface.ASMacro)

	if iface.ID == 0 {
		res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO vlan_interfaces (customer_name, abbreviation, asn, protocol, vlan_id, vlan_tag, address, traffic_bits, traffic_bytes, as_macro, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			iface.CustomerName, iface.Abbreviation, iface.ASN, iface.Protocol, iface.VlanID, iface.VlanTag,
			iface.Address, iface.TrafficBits, iface.TrafficBytes, macro, updatedAt)
		if err != nil {
			return 0, fmt.Errorf("insert interface: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert interface id: %w", err)
		}
		return id, nil
	}

	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE vlan_interfaces SET customer_name = ?, abbreviation = ?, asn = ?, protocol = ?, vlan_id = ?, vlan_tag = ?,
    address = ?, traffic_bits = ?, traffic_bytes = ?, as_macro = ?, updated_at = ?
WHERE id = ?`,
		iface.CustomerName, iface.Abbreviation, iface.ASN, iface.Protocol, iface.VlanID, iface.VlanTag,
		iface.Address, iface.TrafficBits, iface.TrafficBytes, macro, updatedAt, iface.ID)
	if err != nil {
		return 0, fmt.Errorf("update interface %d: %w", iface.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update interface %d: %w", iface.ID, err)
	}
	if affected == 0 {
		return 0, storage.ErrNotFound
	}
	return iface.ID, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterface(row rowScanner) (storage.VlanInterface, error) {
	var iface storage.VlanInterface
	var macro string
	if err := row.Scan(
		&iface.ID,
		&iface.CustomerName,
		&iface.Abbreviation,
		&iface.ASN,
		&iface.Protocol,
		&iface.VlanID,
		&iface.VlanTag,
		&iface.Address,
		&iface.TrafficBits,
		&iface.TrafficBytes,
		&macro,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.VlanInterface{}, err
		}
		return storage.VlanInterface{}, fmt.Errorf("scan interface: %w", err)
	}
	asns, err := decodeMacro(macro)
	if err != nil {
		return storage.VlanInterface{}, fmt.Errorf("decode as macro of interface %d: %w", iface.ID, err)
	}
	iface.ASMacro = asns
	return iface, nil
}

func encodeMacro(asns []int64) string {
	parts := make([]string, len(asns))
	for i, asn := range asns {
		parts[i] = strconv.FormatInt(asn, 10)
	}
	return strings.Join(parts, ",")
}

func decodeMacro(value string) ([]int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	asns := make([]int64, 0, len(parts))
	for _, part := range parts {
		asn, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		asns = append(asns, asn)
	}
	return asns, nil
}

var _ storage.Store = (*Store)(nil)
