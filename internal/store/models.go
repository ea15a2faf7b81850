package store

// User 使用者帳號
type User struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;size:100;not null"`
	Email        string `gorm:"column:email;size:255;not null;uniqueIndex:idx_usuarios_email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`
}

func (User) TableName() string { return "usuarios" }

// UserPreference 使用者保存的偏好，每個維度最多一筆
type UserPreference struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64  `gorm:"column:usuario_id;not null;uniqueIndex:idx_pref_usuario_tipo"`
	Dimension string `gorm:"column:tipo_preferencia;size:50;not null;uniqueIndex:idx_pref_usuario_tipo"`
	Value     string `gorm:"column:valor_preferencia;size:255;not null"`
}

func (UserPreference) TableName() string { return "preferencias_usuario" }

// TourRating 使用者對酒莊導覽的評分，每個 (使用者, 酒莊) 最多一筆
type TourRating struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   int64  `gorm:"column:usuario_id;not null;uniqueIndex:idx_valoracion_usuario_vina"`
	WineryID int64  `gorm:"column:vina_id;not null;uniqueIndex:idx_valoracion_usuario_vina"`
	Rating   int    `gorm:"column:rating;not null"`
	Comment  string `gorm:"column:comentario;type:text"`
}

func (TourRating) TableName() string { return "valoraciones_tour" }

// Winery 酒莊
type Winery struct {
	ID              int64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string   `gorm:"column:nombre;size:255;not null"`
	Valley          string   `gorm:"column:valle;size:255"`
	TourDescription *string  `gorm:"column:descripcion_tour;type:text"`
	TourHours       *string  `gorm:"column:horario_tour;size:255"`
	Website         *string  `gorm:"column:link_web;size:512"`
	Latitude        *float64 `gorm:"column:latitud"`
	Longitude       *float64 `gorm:"column:longitud"`
}

func (Winery) TableName() string { return "vinas" }

// Wine 酒款
type Wine struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:nombre;size:255;not null"`
	Grape       string `gorm:"column:cepa;size:100"`
	Year        int    `gorm:"column:ano"`
	Type        string `gorm:"column:tipo;size:50"`
	WineryID    int64  `gorm:"column:vina_id;index"`
	PurchaseURL string `gorm:"column:link_compra;size:512"`
}

func (Wine) TableName() string { return "vinos" }

// FlavorNote 風味詞
type FlavorNote struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;size:100;not null"`
}

func (FlavorNote) TableName() string { return "notas_sabor" }

// Pairing 餐酒搭配詞
type Pairing struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;size:100;not null"`
}

func (Pairing) TableName() string { return "maridajes" }

// Characteristic 酒款特性詞
type Characteristic struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;size:100;not null"`
}

func (Characteristic) TableName() string { return "caracteristicas" }

// WineFlavorNote vinos 與 notas_sabor 的橋接表
type WineFlavorNote struct {
	WineID int64 `gorm:"column:vino_id;primaryKey;autoIncrement:false"`
	NoteID int64 `gorm:"column:nota_id;primaryKey;autoIncrement:false"`
}

func (WineFlavorNote) TableName() string { return "vino_nota" }

// WineCharacteristic vinos 與 caracteristicas 的橋接表
type WineCharacteristic struct {
	WineID           int64 `gorm:"column:vino_id;primaryKey;autoIncrement:false"`
	CharacteristicID int64 `gorm:"column:caracteristica_id;primaryKey;autoIncrement:false"`
}

func (WineCharacteristic) TableName() string { return "vino_caracteristica" }

// WinePairing vinos 與 maridajes 的橋接表
type WinePairing struct {
	WineID    int64 `gorm:"column:vino_id;primaryKey;autoIncrement:false"`
	PairingID int64 `gorm:"column:maridaje_id;primaryKey;autoIncrement:false"`
}

func (WinePairing) TableName() string { return "vino_maridaje" }

// Models 需要遷移的全部模型
func Models() []interface{} {
	return []interface{}{
		&User{},
		&UserPreference{},
		&Winery{},
		&TourRating{},
		&Wine{},
		&FlavorNote{},
		&Pairing{},
		&Characteristic{},
		&WineFlavorNote{},
		&WineCharacteristic{},
		&WinePairing{},
	}
}
