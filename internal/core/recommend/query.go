package recommend

import "strings"

// Query 參數化查詢，使用者輸入只會出現在 Args
type Query struct {
	Text string
	Args []interface{}
}

// 支援的 SQL 方言
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

const wineSelect = `SELECT v.id AS vino_id, v.nombre AS vino_nombre, v.cepa, v.ano, v.tipo, ` +
	`va.nombre AS vina_nombre, va.valle, v.link_compra ` +
	`FROM vinos v JOIN vinas va ON v.vina_id = va.id`

// sideJoin 經由橋接表連到詞彙表的 join
type sideJoin struct {
	bridge      string // 橋接表 + 別名
	bridgeAlias string
	bridgeFK    string // 橋接表指向詞彙表的欄位
	lookup      string // 詞彙表 + 別名
	lookupAlias string
}

var (
	flavorNoteJoin     = sideJoin{"vino_nota", "vn", "nota_id", "notas_sabor", "ns"}
	characteristicJoin = sideJoin{"vino_caracteristica", "vc", "caracteristica_id", "caracteristicas", "c"}
	pairingJoin        = sideJoin{"vino_maridaje", "vm", "maridaje_id", "maridajes", "m"}
)

// QueryBuilder 依偏好組出酒款查詢
type QueryBuilder struct {
	dialect string
}

// NewQueryBuilder 創建查詢建構器
func NewQueryBuilder(dialect string) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build 依序附加 join（nota_sabor、caracteristica、maridaje）與 WHERE 條件
// （cepa、tipo、valle、ano），最後隨機取一筆。
// 每個 join 的條件都放在自己的 ON 子句內，只作用在該 join 的列。
func (b *QueryBuilder) Build(p PreferenceSet) Query {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(wineSelect)

	appendJoin := func(j sideJoin, value string) {
		if value == "" {
			return
		}
		sb.WriteString(" JOIN " + j.bridge + " " + j.bridgeAlias + " ON " + j.bridgeAlias + ".vino_id = v.id")
		sb.WriteString(" JOIN " + j.lookup + " " + j.lookupAlias + " ON " + j.lookupAlias + ".id = " +
			j.bridgeAlias + "." + j.bridgeFK + " AND " + j.lookupAlias + ".nombre = ?")
		args = append(args, value)
	}
	appendJoin(flavorNoteJoin, p.FlavorNote)
	appendJoin(characteristicJoin, p.Characteristic)
	appendJoin(pairingJoin, p.Pairing)

	sb.WriteString(" WHERE 1=1")

	if p.GrapeVariety != "" {
		sb.WriteString(" AND v.cepa = ?")
		args = append(args, p.GrapeVariety)
	}
	if p.WineType != "" {
		sb.WriteString(" AND v.tipo = ?")
		args = append(args, p.WineType)
	}
	if p.Valley != "" {
		sb.WriteString(" AND LOWER(va.valle) LIKE LOWER(?)" + LikeEscape)
		args = append(args, ContainsPattern(p.Valley))
	}
	if p.VintageYear != 0 {
		sb.WriteString(" AND v.ano = ?")
		args = append(args, p.VintageYear)
	}

	sb.WriteString(" ORDER BY " + RandomFunc(b.dialect) + " LIMIT 1")

	return Query{Text: sb.String(), Args: args}
}

// LikeEscape 搭配 ContainsPattern 使用的 ESCAPE 子句，三種方言皆可用
const LikeEscape = " ESCAPE '!'"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern 部分比對用的 LIKE 樣式，fragment 中的萬用字元以字面值比對
func ContainsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

// RandomFunc 方言對應的隨機排序函式
func RandomFunc(dialect string) string {
	if dialect == DialectMySQL {
		return "RAND()"
	}
	return "RANDOM()"
}
