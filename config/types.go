package config

// Config is a query definition document together with the settings used to
// render it. Documents are YAML; every scalar can be overridden from
// SQLGEN_-prefixed environment variables (SQLGEN_DIALECT, SQLGEN_LOG_LEVEL,
// SQLGEN_QUERY_TAKE, ...).
type Config struct {
	Dialect string      `koanf:"dialect" json:"dialect" yaml:"dialect"`
	Log     LogConfig   `koanf:"log" json:"log" yaml:"log"`
	Query   QueryConfig `koanf:"query" json:"query" yaml:"query"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty"`
}

// QueryConfig describes one SELECT statement.
//
// Example:
//
//	query:
//	  select:
//	    - {table: Products, column: Name}
//	    - {count: true}
//	  from: [Products]
//	  where:
//	    clauses:
//	      - {table: Products, column: Price, operator: ">", value: 10}
//	  take: 25
type QueryConfig struct {
	Distinct bool               `koanf:"distinct" json:"distinct" yaml:"distinct"`
	Select   []ProjectionConfig `koanf:"select" json:"select" yaml:"select" validate:"dive"`
	From     []string           `koanf:"from" json:"from" yaml:"from" validate:"required,min=1,dive,sql_identifier"`
	Joins    []JoinConfig       `koanf:"joins" json:"joins" yaml:"joins" validate:"dive"`
	Where    *PredicateConfig   `koanf:"where" json:"where" yaml:"where" validate:"omitempty"`
	GroupBy  []ColumnConfig     `koanf:"group_by" json:"group_by" yaml:"group_by" validate:"dive"`
	Having   *PredicateConfig   `koanf:"having" json:"having" yaml:"having" validate:"omitempty"`
	OrderBy  []OrderConfig      `koanf:"order_by" json:"order_by" yaml:"order_by" validate:"dive"`
	Skip     *int               `koanf:"skip" json:"skip" yaml:"skip" validate:"omitempty,min=0"`
	Take     *int               `koanf:"take" json:"take" yaml:"take" validate:"omitempty,min=0"`
}

// ProjectionConfig is one SELECT list item. Exactly one of All, Count, Raw
// or Column is expected; As aliases a column.
type ProjectionConfig struct {
	All    bool   `koanf:"all" json:"all" yaml:"all"`
	Count  bool   `koanf:"count" json:"count" yaml:"count"`
	Table  string `koanf:"table" json:"table" yaml:"table" validate:"omitempty,sql_identifier"`
	Column string `koanf:"column" json:"column" yaml:"column" validate:"omitempty,sql_identifier"`
	As     string `koanf:"as" json:"as" yaml:"as" validate:"omitempty,sql_identifier"`
	Raw    string `koanf:"raw" json:"raw" yaml:"raw"`
}

// JoinConfig describes a join. Type accepts inner, left, right, full or
// cross; Operator defaults to "=".
type JoinConfig struct {
	Type       string `koanf:"type" json:"type" yaml:"type"`
	Table      string `koanf:"table" json:"table" yaml:"table" validate:"required,sql_identifier"`
	Column     string `koanf:"column" json:"column" yaml:"column" validate:"omitempty,sql_identifier"`
	Operator   string `koanf:"operator" json:"operator" yaml:"operator"`
	BaseTable  string `koanf:"base_table" json:"base_table" yaml:"base_table" validate:"omitempty,sql_identifier"`
	BaseColumn string `koanf:"base_column" json:"base_column" yaml:"base_column" validate:"omitempty,sql_identifier"`
}

// PredicateConfig is a WHERE or HAVING body: either raw text or an ordered
// list of clauses.
type PredicateConfig struct {
	Raw     string         `koanf:"raw" json:"raw" yaml:"raw"`
	Clauses []ClauseConfig `koanf:"clauses" json:"clauses" yaml:"clauses" validate:"dive"`
}

// ClauseConfig is one comparison. Logic ("and"/"or") is ignored on the first clause.
type ClauseConfig struct {
	Logic    string `koanf:"logic" json:"logic" yaml:"logic"`
	Table    string `koanf:"table" json:"table" yaml:"table" validate:"required,sql_identifier"`
	Column   string `koanf:"column" json:"column" yaml:"column" validate:"required,sql_identifier"`
	Operator string `koanf:"operator" json:"operator" yaml:"operator" validate:"required"`
	Value    any    `koanf:"value" json:"value" yaml:"value"`
}

// ColumnConfig is a qualified column reference.
type ColumnConfig struct {
	Table  string `koanf:"table" json:"table" yaml:"table" validate:"required,sql_identifier"`
	Column string `koanf:"column" json:"column" yaml:"column" validate:"required,sql_identifier"`
}

// OrderConfig is one ORDER BY item: raw text, a bare column, or a qualified column.
type OrderConfig struct {
	Table     string `koanf:"table" json:"table" yaml:"table" validate:"omitempty,sql_identifier"`
	Column    string `koanf:"column" json:"column" yaml:"column" validate:"omitempty,sql_identifier"`
	Direction string `koanf:"direction" json:"direction" yaml:"direction"`
	Raw       string `koanf:"raw" json:"raw" yaml:"raw"`
}
