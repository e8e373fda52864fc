package model

// SupportedCities lists delivery cities offered when editing shipping addresses.
var SupportedCities = []string{
	"Karachi",
	"Lahore",
	"Islamabad",
	"Rawalpindi",
	"Faisalabad",
	"Multan",
	"Peshawar",
	"Quetta",
	"Sialkot",
	"Hyderabad",
	"Gujranwala",
	"Bahawalpur",
	"Sargodha",
	"Sukkur",
	"Abbottabad",
	"Mardan",
	"Swat",
	"Dera Ghazi Khan",
	"Sheikhupura",
	"Jhelum",
}
