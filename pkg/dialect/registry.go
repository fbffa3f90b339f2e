package dialect

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownDialect is returned by Lookup for names that are not registered.
var ErrUnknownDialect = errors.New("unknown dialect")

var (
	commonKeywords = []string{
		"ADD", "ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CHECK",
		"COLUMN", "COMMIT", "CONSTRAINT", "CREATE", "CROSS", "DATABASE", "DEFAULT", "DELETE",
		"DESC", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT", "EXISTS", "FALSE", "FETCH", "FIRST",
		"FOREIGN", "FROM", "FULL", "GRANT", "GROUP", "HAVING", "IF", "IN", "INDEX", "INNER",
		"INSERT", "INTERSECT", "INTERVAL", "INTO", "IS", "JOIN", "KEY", "LEFT", "LIKE", "LIMIT",
		"MERGE", "NATURAL", "NEXT", "NOT", "NULL", "OFFSET", "ON", "ONLY", "OR", "ORDER",
		"OUTER", "OVER", "PARTITION", "PRIMARY", "RECURSIVE", "REFERENCES", "REPLACE",
		"RETURNING", "REVOKE", "RIGHT", "ROLLBACK", "ROWS", "SCHEMA", "SELECT", "SEQUENCE",
		"SET", "TABLE", "THEN", "TRUE", "TRUNCATE", "UNION", "UNIQUE", "UPDATE", "USING",
		"VALUES", "VIEW", "WHEN", "WHERE", "WINDOW", "WITH",
	}

	commonTypes = []string{
		"BIGINT", "BOOLEAN", "CHAR", "DATE", "DECIMAL", "DOUBLE", "FLOAT", "INT", "INTEGER",
		"NUMERIC", "REAL", "SMALLINT", "TEXT", "TIME", "TIMESTAMP", "VARCHAR",
	}

	commonFunctions = []string{
		"ABS", "AVG", "CAST", "COALESCE", "CONCAT", "COUNT", "DENSE_RANK", "EXTRACT", "LAG",
		"LEAD", "LENGTH", "LOWER", "MAX", "MIN", "NULLIF", "RANK", "ROUND", "ROW_NUMBER",
		"SUBSTRING", "SUM", "TRIM", "UPPER",
	}

	registry = map[string]*Dialect{}
)

func init() {
	register(New("standard",
		Keywords(commonKeywords...),
		Keywords(commonTypes...),
		Functions(commonFunctions...),
		CommandPrefix("@"),
	))

	register(New("clickhouse",
		Keywords(commonKeywords...),
		Keywords(
			"ANY", "ARRAY", "CLUSTER", "ENGINE", "FINAL", "FORMAT", "GLOBAL", "MATERIALIZED",
			"POPULATE", "PREWHERE", "SAMPLE", "SETTINGS", "TTL",
		),
		Functions(commonFunctions...),
		Functions(
			"any", "argMax", "argMin", "arrayJoin", "countIf", "formatDateTime", "groupArray",
			"if", "multiIf", "now", "quantile", "sumIf", "toDate", "toDateTime", "toStartOfDay",
			"toStartOfHour", "toString", "toUInt64", "toYYYYMM", "uniq", "uniqExact",
		),
		QuoteChars('"', '`'),
		CommandPrefix("@"),
	))

	register(New("mysql",
		Keywords(commonKeywords...),
		Keywords(commonTypes...),
		Keywords(
			"AUTO_INCREMENT", "DECLARE", "DESCRIBE", "ENGINE", "FUNCTION", "PROCEDURE",
			"RETURNS", "SHOW", "TRIGGER", "UNSIGNED",
		),
		Bounds("BEGIN", "END"),
		Functions(commonFunctions...),
		Functions("DATE_FORMAT", "GROUP_CONCAT", "IFNULL", "LPAD", "NOW", "RPAD", "STR_TO_DATE"),
		LineComments("--", "#"),
		QuoteChars('"', '`'),
		Redefiner("DELIMITER"),
		CommandPrefix("@"),
	))

	register(New("postgres",
		Keywords(commonKeywords...),
		Keywords(commonTypes...),
		Keywords("ILIKE", "JSONB", "LATERAL", "RETURNS", "SERIAL"),
		Functions(commonFunctions...),
		Functions(
			"array_agg", "date_trunc", "generate_series", "jsonb_build_object", "now",
			"string_agg", "to_char", "to_date",
		),
		CommandPrefix("@"),
	))

	register(New("oracle",
		Keywords(commonKeywords...),
		Keywords(commonTypes...),
		Keywords(
			"BODY", "CONNECT", "EXCEPTION", "FUNCTION", "LOOP", "MINUS", "NUMBER", "PACKAGE",
			"PRIOR", "PROCEDURE", "RETURN", "START", "VARCHAR2",
		),
		Headers("DECLARE"),
		Bounds("BEGIN", "END"),
		Functions(commonFunctions...),
		Functions("DECODE", "LISTAGG", "NVL", "NVL2", "TO_CHAR", "TO_DATE", "TO_NUMBER"),
		CommandPrefix("@"),
	))

	register(New("sqlserver",
		Keywords(commonKeywords...),
		Keywords(commonTypes...),
		Keywords("DECLARE", "EXEC", "IDENTITY", "NOLOCK", "NVARCHAR", "OUTPUT", "PROCEDURE", "TOP"),
		Bounds("BEGIN", "END"),
		Functions(commonFunctions...),
		Functions("CONVERT", "DATEADD", "DATEDIFF", "GETDATE", "ISNULL"),
		Delimiters(";", "GO"),
		QuoteChars('"', '['),
	))
}

func register(d *Dialect) {
	registry[d.Name] = d
}

// Lookup returns the built-in dialect with the given name (case-insensitive).
//
// Example:
//
//	d, err := dialect.Lookup("mysql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d.DelimiterRedefiner()) // DELIMITER
func Lookup(name string) (*Dialect, error) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q (available: %s)", name, strings.Join(Names(), ", "))
	}

	return d, nil
}

// Names returns the sorted names of all built-in dialects.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the standard dialect.
func Default() *Dialect {
	return registry["standard"]
}
