package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOprLog{},
	&SysScheduler{},
	// Store
	&User{},
	&Product{},
	&Order{},
	&OrderItem{},
	&Wishlist{},
}
