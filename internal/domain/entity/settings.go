package entity

import "slices"

// ContactInfo holds the store's public contact details.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// BannerImages holds the image references used by the storefront sections.
type BannerImages struct {
	Hero             string `json:"hero"`
	Service          string `json:"service"`
	Printing3D       string `json:"printing3d,omitempty"`
	PCBManufacturing string `json:"pcbManufacturing,omitempty"`
}

// ContentTexts holds the free-form copy shown on the storefront.
type ContentTexts struct {
	HeroTitle             string `json:"heroTitle,omitempty"`
	HeroSubtitle          string `json:"heroSubtitle,omitempty"`
	Printing3DTitle       string `json:"printing3dTitle,omitempty"`
	Printing3DDescription string `json:"printing3dDescription,omitempty"`
	PCBTitle              string `json:"pcbTitle,omitempty"`
	PCBDescription        string `json:"pcbDescription,omitempty"`
}

// StoreSettings is the singleton store configuration. The category list is
// both the filter vocabulary and the validity constraint for product
// categories. It is read at startup and replaced wholesale by admin saves.
type StoreSettings struct {
	Contact    ContactInfo  `json:"contact"`
	Categories []string     `json:"categories"`
	Banners    BannerImages `json:"banners"`
	Content    ContentTexts `json:"content"`
}

// HasCategory reports whether name is part of the configured category set.
func (s *StoreSettings) HasCategory(name string) bool {
	return slices.Contains(s.Categories, name)
}

// DefaultStoreSettings returns the built-in settings used when neither the
// database nor the fallback snapshot can provide any.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Contact: ContactInfo{
			Email:   "info@okindustries.cz",
			Phone:   "+420 123 456 789",
			Address: "Prague, Czech Republic",
		},
		Categories: []string{
			"diodes",
			"resistors",
			"inductors",
			"capacitors",
			"modules",
			"sensors",
			"microcontrollers",
			"wires",
			"installation",
			"tools",
			"spare parts",
		},
		Content: ContentTexts{
			HeroTitle:    "OK Industries",
			HeroSubtitle: "Your trusted partner for electronic components",
		},
	}
}
