package models

// Reference is a foreign key value that must point at an existing row.
type Reference struct {
	Field string
	Table string
	ID    uint
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement"`
	Name  string  `gorm:"size:80;uniqueIndex;not null"`
	Price float64 `gorm:"not null"`
	Stock int     `gorm:"not null;default:0"`
}

type Cart struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	UserID    uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;check:quantity > 0"`
	User      *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (c Cart) References() []Reference {
	return []Reference{
		{Field: "user_id", Table: "users", ID: c.UserID},
		{Field: "product_id", Table: "products", ID: c.ProductID},
	}
}

type CartItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	CartID    uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;check:quantity > 0"`
	Cart      *Cart    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (c CartItem) References() []Reference {
	return []Reference{
		{Field: "cart_id", Table: "carts", ID: c.CartID},
		{Field: "product_id", Table: "products", ID: c.ProductID},
	}
}

type Order struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	UserID    uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;check:quantity > 0"`
	User      *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (o Order) References() []Reference {
	return []Reference{
		{Field: "user_id", Table: "users", ID: o.UserID},
		{Field: "product_id", Table: "products", ID: o.ProductID},
	}
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	OrderID   uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;check:quantity > 0"`
	Order     *Order   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (o OrderItem) References() []Reference {
	return []Reference{
		{Field: "order_id", Table: "orders", ID: o.OrderID},
		{Field: "product_id", Table: "products", ID: o.ProductID},
	}
}

type Review struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	UserID    uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Rating    int      `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   *string  `gorm:"type:text"`
	User      *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (r Review) References() []Reference {
	return []Reference{
		{Field: "user_id", Table: "users", ID: r.UserID},
		{Field: "product_id", Table: "products", ID: r.ProductID},
	}
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Review{},
	}
}
