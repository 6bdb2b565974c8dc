package domain

// wallet registry of the hosted platform. forms and tickets are owned by a
// wallet, a user may own several wallets.
type Wallets struct {
	Model
	ID       uint   `gorm:"primaryKey"`
	WalletID string `gorm:"unique;size:36;not null"`
	UserID   string `gorm:"size:36;not null"`
	Name     string `gorm:"unique;size:32;not null"`
	AdminKey string `gorm:"size:64;not null"`
}
