package seed

// Built-in sample datasets inserted during provisioning. Rows are fixed;
// re-seeding skips anything already present instead of overwriting it.

type Asset struct {
	Tag             string
	SerialNumber    string
	Model           string
	Status          string
	Category        string
	Manufacturer    string
	PurchaseDate    string
	PurchaseCost    float64
	WarrantyExpires string
	Location        string
	Notes           string
	IPAddress       string
	MACAddress      string
}

type User struct {
	Name       string
	Email      string
	Department string
	Position   string
	Phone      string
	Location   string
	IsActive   bool
}

// Component references its owning asset by tag; the tag is resolved to a row
// identifier at import time.
type Component struct {
	Name         string
	Category     string
	SerialNumber string
	Manufacturer string
	Model        string
	PurchaseDate string
	PurchaseCost float64
	Status       string
	AssetTag     string
}

type Accessory struct {
	Name              string
	Category          string
	Manufacturer      string
	Model             string
	PurchaseDate      string
	PurchaseCost      float64
	Quantity          int
	QuantityAvailable int
	Location          string
}

type License struct {
	Name           string
	Software       string
	Key            string
	Seats          int
	SeatsAvailable int
	PurchaseDate   string
	ExpirationDate string
	PurchaseCost   float64
	Notes          string
}

type ZabbixVM struct {
	Name        string
	IPAddress   string
	Status      string
	CPUUsage    float64
	MemoryUsage float64
	DiskUsage   float64
	OS          string
	LastCheck   string
}

// ActivityLog references the acting user by email.
type ActivityLog struct {
	UserEmail string
	Action    string
	ItemType  string
	ItemID    int
	Details   string
	Timestamp string
}

type BitLockerKey struct {
	AssetTag    string
	RecoveryKey string
	CreatedAt   string
}

var Assets = []Asset{
	{
		Tag: "LT-001", SerialNumber: "DELLXPS15-001", Model: "Dell XPS 15",
		Status: "deployed", Category: "Laptop", Manufacturer: "Dell",
		PurchaseDate: "2023-01-15", PurchaseCost: 1800, WarrantyExpires: "2026-01-14",
		Location: "Office A-101", Notes: "Primary laptop for John Doe",
		IPAddress: "192.168.1.101", MACAddress: "00:1A:2B:3C:4D:E1",
	},
	{
		Tag: "DK-005", SerialNumber: "HPELITEDESK-005", Model: "HP EliteDesk 800 G9",
		Status: "available", Category: "Desktop", Manufacturer: "HP",
		PurchaseDate: "2023-03-20", PurchaseCost: 1200, WarrantyExpires: "2026-03-19",
		Location: "IT Storage Room", Notes: "Standard office desktop",
		MACAddress: "00:1A:2B:3C:4D:E2",
	},
	{
		Tag: "SV-002", SerialNumber: "DELLPESRV-002", Model: "Dell PowerEdge R740",
		Status: "maintenance", Category: "Server", Manufacturer: "Dell",
		PurchaseDate: "2022-11-01", PurchaseCost: 5500, WarrantyExpires: "2025-10-31",
		Location: "Data Center Rack 3", Notes: "Scheduled firmware update",
		IPAddress: "10.0.0.5", MACAddress: "00:1A:2B:3C:4D:E3",
	},
	{
		Tag: "MN-010", SerialNumber: "DELLU2723QE-010", Model: "Dell UltraSharp U2723QE",
		Status: "deployed", Category: "Monitor", Manufacturer: "Dell",
		PurchaseDate: "2023-06-10", PurchaseCost: 600, WarrantyExpires: "2026-06-09",
		Location: "Office B-205", Notes: "4K Monitor for Jane Smith",
	},
	{
		Tag: "PR-003", SerialNumber: "HPLJPRO400-003", Model: "HP LaserJet Pro M404dn",
		Status: "decommissioned", Category: "Printer", Manufacturer: "HP",
		PurchaseDate: "2020-05-01", PurchaseCost: 400, WarrantyExpires: "2023-04-30",
		Location: "Recycling Area", Notes: "Replaced with newer model",
		IPAddress: "192.168.1.200", MACAddress: "00:1A:2B:3C:4D:E4",
	},
}

var Users = []User{
	{
		Name: "John Doe", Email: "john.doe@example.com", Department: "IT",
		Position: "System Administrator", Phone: "123-456-7890",
		Location: "Office A-101", IsActive: true,
	},
	{
		Name: "Jane Smith", Email: "jane.smith@example.com", Department: "Marketing",
		Position: "Marketing Manager", Phone: "123-456-7891",
		Location: "Office B-205", IsActive: true,
	},
	{
		Name: "Robert Johnson", Email: "robert.johnson@example.com", Department: "Sales",
		Position: "Sales Representative", Phone: "123-456-7892",
		Location: "Remote", IsActive: true,
	},
	{
		Name: "Emily White", Email: "emily.white@example.com", Department: "Human Resources",
		Position: "HR Specialist", Phone: "123-456-7893",
		Location: "Office C-301", IsActive: false,
	},
}

var Components = []Component{
	{
		Name: "Intel Core i7-11700K", Category: "cpu", SerialNumber: "INTEL-I7-001",
		Manufacturer: "Intel", Model: "Core i7-11700K", PurchaseDate: "2022-05-10",
		PurchaseCost: 349.99, Status: "deployed", AssetTag: "DK-005",
	},
	{
		Name: "Kingston 16GB DDR4", Category: "ram", SerialNumber: "KINGSTON-RAM-001",
		Manufacturer: "Kingston", Model: "HyperX 16GB DDR4-3200", PurchaseDate: "2022-05-10",
		PurchaseCost: 89.99, Status: "deployed", AssetTag: "DK-005",
	},
	{
		Name: "Samsung 1TB SSD", Category: "storage", SerialNumber: "SAMSUNG-SSD-001",
		Manufacturer: "Samsung", Model: "970 EVO Plus", PurchaseDate: "2022-05-10",
		PurchaseCost: 149.99, Status: "available",
	},
}

var Accessories = []Accessory{
	{
		Name: "Logitech MX Master 3 Mouse", Category: "Mouse", Manufacturer: "Logitech",
		Model: "MX Master 3", PurchaseDate: "2023-04-10", PurchaseCost: 99,
		Quantity: 50, QuantityAvailable: 25, Location: "IT Storage - Shelf A",
	},
	{
		Name: "Dell Premier Wireless Keyboard", Category: "Keyboard", Manufacturer: "Dell",
		Model: "KM717", PurchaseDate: "2023-04-10", PurchaseCost: 75,
		Quantity: 50, QuantityAvailable: 30, Location: "IT Storage - Shelf A",
	},
	{
		Name: "Anker USB-C Hub", Category: "Docking Station/Hub", Manufacturer: "Anker",
		Model: "PowerExpand+ 7-in-1", PurchaseDate: "2023-08-01", PurchaseCost: 45,
		Quantity: 30, QuantityAvailable: 15, Location: "IT Storage - Shelf B",
	},
	{
		Name: "Jabra Evolve 65 Headset", Category: "Headset", Manufacturer: "Jabra",
		Model: "Evolve 65 MS Stereo", PurchaseDate: "2023-09-15", PurchaseCost: 150,
		Quantity: 40, QuantityAvailable: 40, Location: "IT Storage - Shelf C",
	},
}

var Licenses = []License{
	{
		Name: "Microsoft 365 E3", Software: "Microsoft 365", Key: "VOL-M365-E3-001",
		Seats: 100, SeatsAvailable: 15, PurchaseDate: "2024-01-01",
		ExpirationDate: "2024-12-31", PurchaseCost: 36000,
		Notes: "Annual subscription for all employees",
	},
	{
		Name: "Adobe Creative Cloud All Apps", Software: "Adobe Creative Cloud", Key: "VOL-ADOBECC-001",
		Seats: 20, SeatsAvailable: 5, PurchaseDate: "2024-03-01",
		ExpirationDate: "2025-02-28", PurchaseCost: 12000,
		Notes: "For Marketing and Design teams",
	},
	{
		Name: "JetBrains All Products Pack", Software: "JetBrains IDEs", Key: "PERP-JB-ALL-005",
		Seats: 10, SeatsAvailable: 2, PurchaseDate: "2023-11-15",
		ExpirationDate: "2024-11-14", PurchaseCost: 6490,
		Notes: "For Development team",
	},
	{
		Name: "Slack Standard Plan", Software: "Slack", Key: "SUB-SLACK-STD-001",
		Seats: 150, SeatsAvailable: 20, PurchaseDate: "2024-02-01",
		ExpirationDate: "2025-01-31", PurchaseCost: 12150,
		Notes: "Company-wide communication tool",
	},
}

var ZabbixVMs = []ZabbixVM{
	{
		Name: "Web Server", IPAddress: "192.168.1.10", Status: "up",
		CPUUsage: 45.2, MemoryUsage: 62.8, DiskUsage: 78.5,
		OS: "Ubuntu 22.04 LTS", LastCheck: "2023-05-25T10:15:00Z",
	},
	{
		Name: "Database Server", IPAddress: "192.168.1.11", Status: "up",
		CPUUsage: 68.7, MemoryUsage: 75.3, DiskUsage: 82.1,
		OS: "CentOS 8", LastCheck: "2023-05-25T10:15:00Z",
	},
	{
		Name: "File Server", IPAddress: "192.168.1.12", Status: "down",
		CPUUsage: 0, MemoryUsage: 0, DiskUsage: 65.4,
		OS: "Windows Server 2019", LastCheck: "2023-05-25T10:15:00Z",
	},
}

var ActivityLogs = []ActivityLog{
	{
		UserEmail: "john.doe@example.com", Action: "checkout", ItemType: "asset", ItemID: 1,
		Details: "Checked out Dell XPS 15 to John Smith", Timestamp: "2023-05-20T10:30:00Z",
	},
	{
		UserEmail: "john.doe@example.com", Action: "create", ItemType: "user", ItemID: 103,
		Details: "Created new user: Robert Johnson", Timestamp: "2022-03-20T11:45:00Z",
	},
	{
		UserEmail: "john.doe@example.com", Action: "update", ItemType: "asset", ItemID: 2,
		Details: "Updated HP EliteDesk 800 status to available", Timestamp: "2023-03-15T14:20:00Z",
	},
	{
		UserEmail: "jane.smith@example.com", Action: "assign", ItemType: "license", ItemID: 401,
		Details: "Assigned Microsoft 365 license to Jane Smith", Timestamp: "2023-02-10T11:15:00Z",
	},
	{
		UserEmail: "john.doe@example.com", Action: "access", ItemType: "bitlocker", ItemID: 1,
		Details: "Accessed BitLocker recovery key for Dell XPS 15", Timestamp: "2023-03-10T14:30:00Z",
	},
}

var BitLockerKeys = []BitLockerKey{
	{
		AssetTag:    "LT-001",
		RecoveryKey: "123456-123456-123456-123456-123456-123456-123456-123456",
		CreatedAt:   "2023-01-16T10:00:00Z",
	},
	{
		AssetTag:    "DK-005",
		RecoveryKey: "234567-234567-234567-234567-234567-234567-234567-234567",
		CreatedAt:   "2022-11-12T12:00:00Z",
	},
}
