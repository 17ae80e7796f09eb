package gazetteer

import "github.com/usvmap/usvmap/internal/core/domain"

// countries holds one representative center per ISO 3166-1 alpha-2 code.
// Names use the canonical spelling produced by domain.NormalizeCountry.
var countries = map[string]entry{
	"AD": {Name: "Andorra", Center: domain.GeoPoint{Lat: 42.0, Lon: 1.0}},
	"AE": {Name: "United Arab Emirates", Center: domain.GeoPoint{Lat: 23.424076, Lon: 53.847818}},
	"AF": {Name: "Afghanistan", Center: domain.GeoPoint{Lat: 33.0, Lon: 67.0}},
	"AG": {Name: "Antigua and Barbuda", Center: domain.GeoPoint{Lat: 17.0, Lon: -61.0}},
	"AI": {Name: "Anguilla", Center: domain.GeoPoint{Lat: 18.0, Lon: -63.0}},
	"AL": {Name: "Albania", Center: domain.GeoPoint{Lat: 41.0, Lon: 20.0}},
	"AM": {Name: "Armenia", Center: domain.GeoPoint{Lat: 40.0, Lon: 45.0}},
	"AO": {Name: "Angola", Center: domain.GeoPoint{Lat: -11.0, Lon: 17.0}},
	"AQ": {Name: "Antarctica", Center: domain.GeoPoint{Lat: -75.0, Lon: 0.0}},
	"AR": {Name: "Argentina", Center: domain.GeoPoint{Lat: -38.0, Lon: -63.0}},
	"AS": {Name: "American Samoa", Center: domain.GeoPoint{Lat: -14.0, Lon: -170.0}},
	"AT": {Name: "Austria", Center: domain.GeoPoint{Lat: 47.516231, Lon: 14.550072}},
	"AU": {Name: "Australia", Center: domain.GeoPoint{Lat: -25.274398, Lon: 133.775136}},
	"AW": {Name: "Aruba", Center: domain.GeoPoint{Lat: 12.0, Lon: -69.0}},
	"AZ": {Name: "Azerbaijan", Center: domain.GeoPoint{Lat: 40.0, Lon: 47.0}},
	"BA": {Name: "Bosnia and Herzegovina", Center: domain.GeoPoint{Lat: 43.0, Lon: 17.0}},
	"BB": {Name: "Barbados", Center: domain.GeoPoint{Lat: 13.0, Lon: -59.0}},
	"BD": {Name: "Bangladesh", Center: domain.GeoPoint{Lat: 23.0, Lon: 90.0}},
	"BE": {Name: "Belgium", Center: domain.GeoPoint{Lat: 50.503887, Lon: 4.469936}},
	"BF": {Name: "Burkina Faso", Center: domain.GeoPoint{Lat: 12.0, Lon: -1.0}},
	"BG": {Name: "Bulgaria", Center: domain.GeoPoint{Lat: 42.0, Lon: 25.0}},
	"BH": {Name: "Bahrain", Center: domain.GeoPoint{Lat: 25.0, Lon: 50.0}},
	"BI": {Name: "Burundi", Center: domain.GeoPoint{Lat: -3.0, Lon: 29.0}},
	"BJ": {Name: "Benin", Center: domain.GeoPoint{Lat: 9.0, Lon: 2.0}},
	"BL": {Name: "Saint Barthélemy", Center: domain.GeoPoint{Lat: 17.0, Lon: -62.0}},
	"BM": {Name: "Bermuda", Center: domain.GeoPoint{Lat: 32.0, Lon: -64.0}},
	"BN": {Name: "Brunei Darussalam", Center: domain.GeoPoint{Lat: 4.0, Lon: 114.0}},
	"BO": {Name: "Bolivia", Center: domain.GeoPoint{Lat: -16.0, Lon: -63.0}},
	"BR": {Name: "Brazil", Center: domain.GeoPoint{Lat: -14.235004, Lon: -51.92528}},
	"BS": {Name: "Bahamas", Center: domain.GeoPoint{Lat: 25.0, Lon: -77.0}},
	"BT": {Name: "Bhutan", Center: domain.GeoPoint{Lat: 27.0, Lon: 90.0}},
	"BV": {Name: "Bouvet Island", Center: domain.GeoPoint{Lat: -54.0, Lon: 3.0}},
	"BW": {Name: "Botswana", Center: domain.GeoPoint{Lat: -22.0, Lon: 24.0}},
	"BY": {Name: "Belarus", Center: domain.GeoPoint{Lat: 53.0, Lon: 27.0}},
	"BZ": {Name: "Belize", Center: domain.GeoPoint{Lat: 17.0, Lon: -88.0}},
	"CA": {Name: "Canada", Center: domain.GeoPoint{Lat: 56.130366, Lon: -106.346771}},
	"CC": {Name: "Cocos (Keeling) Islands", Center: domain.GeoPoint{Lat: -12.0, Lon: 96.0}},
	"CD": {Name: "DR Congo", Center: domain.GeoPoint{Lat: -4.0, Lon: 21.0}},
	"CF": {Name: "Central African Republic", Center: domain.GeoPoint{Lat: 6.0, Lon: 20.0}},
	"CG": {Name: "Congo", Center: domain.GeoPoint{Lat: 0.0, Lon: 15.0}},
	"CH": {Name: "Switzerland", Center: domain.GeoPoint{Lat: 46.818188, Lon: 8.227512}},
	"CI": {Name: "Côte d'Ivoire", Center: domain.GeoPoint{Lat: 7.0, Lon: -5.0}},
	"CK": {Name: "Cook Islands", Center: domain.GeoPoint{Lat: -21.0, Lon: -159.0}},
	"CL": {Name: "Chile", Center: domain.GeoPoint{Lat: -35.675147, Lon: -71.542969}},
	"CM": {Name: "Cameroon", Center: domain.GeoPoint{Lat: 7.0, Lon: 12.0}},
	"CN": {Name: "China", Center: domain.GeoPoint{Lat: 35.86166, Lon: 104.195397}},
	"CO": {Name: "Colombia", Center: domain.GeoPoint{Lat: 4.0, Lon: -74.0}},
	"CR": {Name: "Costa Rica", Center: domain.GeoPoint{Lat: 9.0, Lon: -83.0}},
	"CU": {Name: "Cuba", Center: domain.GeoPoint{Lat: 21.0, Lon: -77.0}},
	"CV": {Name: "Cabo Verde", Center: domain.GeoPoint{Lat: 16.0, Lon: -24.0}},
	"CW": {Name: "Curaçao", Center: domain.GeoPoint{Lat: 12.0, Lon: -68.0}},
	"CX": {Name: "Christmas Island", Center: domain.GeoPoint{Lat: -10.0, Lon: 105.0}},
	"CY": {Name: "Cyprus", Center: domain.GeoPoint{Lat: 35.0, Lon: 33.0}},
	"CZ": {Name: "Czechia", Center: domain.GeoPoint{Lat: 49.817492, Lon: 15.472962}},
	"DE": {Name: "Germany", Center: domain.GeoPoint{Lat: 51.165691, Lon: 10.451526}},
	"DJ": {Name: "Djibouti", Center: domain.GeoPoint{Lat: 11.0, Lon: 42.0}},
	"DK": {Name: "Denmark", Center: domain.GeoPoint{Lat: 56.26392, Lon: 9.501785}},
	"DM": {Name: "Dominica", Center: domain.GeoPoint{Lat: 15.0, Lon: -61.0}},
	"DO": {Name: "Dominican Republic", Center: domain.GeoPoint{Lat: 18.0, Lon: -70.0}},
	"DZ": {Name: "Algeria", Center: domain.GeoPoint{Lat: 28.0, Lon: 1.0}},
	"EC": {Name: "Ecuador", Center: domain.GeoPoint{Lat: -1.0, Lon: -78.0}},
	"EE": {Name: "Estonia", Center: domain.GeoPoint{Lat: 58.595272, Lon: 25.013607}},
	"EG": {Name: "Egypt", Center: domain.GeoPoint{Lat: 26.0, Lon: 30.0}},
	"EH": {Name: "Western Sahara", Center: domain.GeoPoint{Lat: 24.0, Lon: -12.0}},
	"ER": {Name: "Eritrea", Center: domain.GeoPoint{Lat: 15.0, Lon: 39.0}},
	"ES": {Name: "Spain", Center: domain.GeoPoint{Lat: 40.463667, Lon: -3.74922}},
	"ET": {Name: "Ethiopia", Center: domain.GeoPoint{Lat: 9.0, Lon: 40.0}},
	"FI": {Name: "Finland", Center: domain.GeoPoint{Lat: 61.92411, Lon: 25.748151}},
	"FJ": {Name: "Fiji", Center: domain.GeoPoint{Lat: -16.0, Lon: 179.0}},
	"FK": {Name: "Falkland Islands (Malvinas)", Center: domain.GeoPoint{Lat: -51.0, Lon: -59.0}},
	"FM": {Name: "Micronesia", Center: domain.GeoPoint{Lat: 7.0, Lon: 150.0}},
	"FO": {Name: "Faroe Islands", Center: domain.GeoPoint{Lat: 61.0, Lon: -6.0}},
	"FR": {Name: "France", Center: domain.GeoPoint{Lat: 46.227638, Lon: 2.213749}},
	"GA": {Name: "Gabon", Center: domain.GeoPoint{Lat: 0.0, Lon: 11.0}},
	"GB": {Name: "United Kingdom", Center: domain.GeoPoint{Lat: 55.378051, Lon: -3.435973}},
	"GD": {Name: "Grenada", Center: domain.GeoPoint{Lat: 12.0, Lon: -61.0}},
	"GE": {Name: "Georgia", Center: domain.GeoPoint{Lat: 42.0, Lon: 43.0}},
	"GF": {Name: "French Guiana", Center: domain.GeoPoint{Lat: 3.0, Lon: -53.0}},
	"GG": {Name: "Guernsey", Center: domain.GeoPoint{Lat: 49.0, Lon: -2.0}},
	"GH": {Name: "Ghana", Center: domain.GeoPoint{Lat: 7.0, Lon: -1.0}},
	"GI": {Name: "Gibraltar", Center: domain.GeoPoint{Lat: 36.0, Lon: -5.0}},
	"GL": {Name: "Greenland", Center: domain.GeoPoint{Lat: 71.0, Lon: -42.0}},
	"GM": {Name: "Gambia", Center: domain.GeoPoint{Lat: 13.0, Lon: -15.0}},
	"GN": {Name: "Guinea", Center: domain.GeoPoint{Lat: 9.0, Lon: -9.0}},
	"GP": {Name: "Guadeloupe", Center: domain.GeoPoint{Lat: 16.0, Lon: -62.0}},
	"GQ": {Name: "Equatorial Guinea", Center: domain.GeoPoint{Lat: 1.0, Lon: 10.0}},
	"GR": {Name: "Greece", Center: domain.GeoPoint{Lat: 39.074208, Lon: 21.824312}},
	"GS": {Name: "South Georgia and the South Sandwich Islands", Center: domain.GeoPoint{Lat: -54.0, Lon: -36.0}},
	"GT": {Name: "Guatemala", Center: domain.GeoPoint{Lat: 15.0, Lon: -90.0}},
	"GU": {Name: "Guam", Center: domain.GeoPoint{Lat: 13.0, Lon: 144.0}},
	"GW": {Name: "Guinea-Bissau", Center: domain.GeoPoint{Lat: 11.0, Lon: -15.0}},
	"GY": {Name: "Guyana", Center: domain.GeoPoint{Lat: 4.0, Lon: -58.0}},
	"HK": {Name: "Hong Kong", Center: domain.GeoPoint{Lat: 22.0, Lon: 114.0}},
	"HM": {Name: "Heard Island and McDonald Islands", Center: domain.GeoPoint{Lat: -53.0, Lon: 73.0}},
	"HN": {Name: "Honduras", Center: domain.GeoPoint{Lat: 15.0, Lon: -86.0}},
	"HR": {Name: "Croatia", Center: domain.GeoPoint{Lat: 45.0, Lon: 15.0}},
	"HT": {Name: "Haiti", Center: domain.GeoPoint{Lat: 18.0, Lon: -72.0}},
	"HU": {Name: "Hungary", Center: domain.GeoPoint{Lat: 47.0, Lon: 19.0}},
	"ID": {Name: "Indonesia", Center: domain.GeoPoint{Lat: -0.789275, Lon: 113.921327}},
	"IE": {Name: "Ireland", Center: domain.GeoPoint{Lat: 53.41291, Lon: -8.24389}},
	"IL": {Name: "Israel", Center: domain.GeoPoint{Lat: 31.046051, Lon: 34.851612}},
	"IM": {Name: "Isle of Man", Center: domain.GeoPoint{Lat: 54.0, Lon: -4.0}},
	"IN": {Name: "India", Center: domain.GeoPoint{Lat: 20.593684, Lon: 78.96288}},
	"IO": {Name: "British Indian Ocean Territory", Center: domain.GeoPoint{Lat: -6.0, Lon: 71.0}},
	"IQ": {Name: "Iraq", Center: domain.GeoPoint{Lat: 33.0, Lon: 43.0}},
	"IR": {Name: "Iran", Center: domain.GeoPoint{Lat: 32.0, Lon: 53.0}},
	"IS": {Name: "Iceland", Center: domain.GeoPoint{Lat: 64.963051, Lon: -19.020835}},
	"IT": {Name: "Italy", Center: domain.GeoPoint{Lat: 41.87194, Lon: 12.56738}},
	"JE": {Name: "Jersey", Center: domain.GeoPoint{Lat: 49.0, Lon: -2.0}},
	"JM": {Name: "Jamaica", Center: domain.GeoPoint{Lat: 18.0, Lon: -77.0}},
	"JO": {Name: "Jordan", Center: domain.GeoPoint{Lat: 30.0, Lon: 36.0}},
	"JP": {Name: "Japan", Center: domain.GeoPoint{Lat: 36.204824, Lon: 138.252924}},
	"KE": {Name: "Kenya", Center: domain.GeoPoint{Lat: 0.0, Lon: 37.0}},
	"KG": {Name: "Kyrgyzstan", Center: domain.GeoPoint{Lat: 41.0, Lon: 74.0}},
	"KH": {Name: "Cambodia", Center: domain.GeoPoint{Lat: 12.0, Lon: 104.0}},
	"KI": {Name: "Kiribati", Center: domain.GeoPoint{Lat: -3.0, Lon: -168.0}},
	"KM": {Name: "Comoros", Center: domain.GeoPoint{Lat: -11.0, Lon: 43.0}},
	"KN": {Name: "Saint Kitts and Nevis", Center: domain.GeoPoint{Lat: 17.0, Lon: -62.0}},
	"KP": {Name: "North Korea (DPRK)", Center: domain.GeoPoint{Lat: 40.0, Lon: 127.0}},
	"KR": {Name: "South Korea", Center: domain.GeoPoint{Lat: 35.907757, Lon: 127.766922}},
	"KW": {Name: "Kuwait", Center: domain.GeoPoint{Lat: 29.0, Lon: 47.0}},
	"KY": {Name: "Cayman Islands", Center: domain.GeoPoint{Lat: 19.0, Lon: -80.0}},
	"KZ": {Name: "Kazakhstan", Center: domain.GeoPoint{Lat: 48.0, Lon: 66.0}},
	"LA": {Name: "Lao", Center: domain.GeoPoint{Lat: 19.0, Lon: 102.0}},
	"LB": {Name: "Lebanon", Center: domain.GeoPoint{Lat: 33.0, Lon: 35.0}},
	"LC": {Name: "Saint Lucia", Center: domain.GeoPoint{Lat: 13.0, Lon: -60.0}},
	"LI": {Name: "Liechtenstein", Center: domain.GeoPoint{Lat: 47.0, Lon: 9.0}},
	"LK": {Name: "Sri Lanka", Center: domain.GeoPoint{Lat: 7.0, Lon: 80.0}},
	"LR": {Name: "Liberia", Center: domain.GeoPoint{Lat: 6.0, Lon: -9.0}},
	"LS": {Name: "Lesotho", Center: domain.GeoPoint{Lat: -29.0, Lon: 28.0}},
	"LT": {Name: "Lithuania", Center: domain.GeoPoint{Lat: 55.169438, Lon: 23.881275}},
	"LU": {Name: "Luxembourg", Center: domain.GeoPoint{Lat: 49.0, Lon: 6.0}},
	"LV": {Name: "Latvia", Center: domain.GeoPoint{Lat: 56.879635, Lon: 24.603189}},
	"LY": {Name: "Libya", Center: domain.GeoPoint{Lat: 26.0, Lon: 17.0}},
	"MA": {Name: "Morocco", Center: domain.GeoPoint{Lat: 31.0, Lon: -7.0}},
	"MC": {Name: "Monaco", Center: domain.GeoPoint{Lat: 43.0, Lon: 7.0}},
	"MD": {Name: "Moldova", Center: domain.GeoPoint{Lat: 47.0, Lon: 28.0}},
	"ME": {Name: "Montenegro", Center: domain.GeoPoint{Lat: 42.0, Lon: 19.0}},
	"MF": {Name: "Saint Martin", Center: domain.GeoPoint{Lat: 18.0, Lon: -63.0}},
	"MG": {Name: "Madagascar", Center: domain.GeoPoint{Lat: -18.0, Lon: 46.0}},
	"MH": {Name: "Marshall Islands", Center: domain.GeoPoint{Lat: 7.0, Lon: 171.0}},
	"MK": {Name: "North Macedonia", Center: domain.GeoPoint{Lat: 41.0, Lon: 21.0}},
	"ML": {Name: "Mali", Center: domain.GeoPoint{Lat: 17.0, Lon: -3.0}},
	"MM": {Name: "Myanmar", Center: domain.GeoPoint{Lat: 21.0, Lon: 95.0}},
	"MN": {Name: "Mongolia", Center: domain.GeoPoint{Lat: 46.0, Lon: 103.0}},
	"MO": {Name: "Macao", Center: domain.GeoPoint{Lat: 22.0, Lon: 113.0}},
	"MP": {Name: "Northern Mariana Islands", Center: domain.GeoPoint{Lat: 17.0, Lon: 145.0}},
	"MQ": {Name: "Martinique", Center: domain.GeoPoint{Lat: 14.0, Lon: -61.0}},
	"MR": {Name: "Mauritania", Center: domain.GeoPoint{Lat: 21.0, Lon: -10.0}},
	"MS": {Name: "Montserrat", Center: domain.GeoPoint{Lat: 16.0, Lon: -62.0}},
	"MT": {Name: "Malta", Center: domain.GeoPoint{Lat: 35.0, Lon: 14.0}},
	"MU": {Name: "Mauritius", Center: domain.GeoPoint{Lat: -20.0, Lon: 57.0}},
	"MV": {Name: "Maldives", Center: domain.GeoPoint{Lat: 3.0, Lon: 73.0}},
	"MW": {Name: "Malawi", Center: domain.GeoPoint{Lat: -13.0, Lon: 34.0}},
	"MX": {Name: "Mexico", Center: domain.GeoPoint{Lat: 23.634501, Lon: -102.552784}},
	"MY": {Name: "Malaysia", Center: domain.GeoPoint{Lat: 4.210484, Lon: 101.975766}},
	"MZ": {Name: "Mozambique", Center: domain.GeoPoint{Lat: -18.0, Lon: 35.0}},
	"NA": {Name: "Namibia", Center: domain.GeoPoint{Lat: -22.0, Lon: 18.0}},
	"NC": {Name: "New Caledonia", Center: domain.GeoPoint{Lat: -20.0, Lon: 165.0}},
	"NE": {Name: "Niger", Center: domain.GeoPoint{Lat: 17.0, Lon: 8.0}},
	"NF": {Name: "Norfolk Island", Center: domain.GeoPoint{Lat: -29.0, Lon: 167.0}},
	"NG": {Name: "Nigeria", Center: domain.GeoPoint{Lat: 9.0, Lon: 8.0}},
	"NI": {Name: "Nicaragua", Center: domain.GeoPoint{Lat: 12.0, Lon: -85.0}},
	"NL": {Name: "Netherlands", Center: domain.GeoPoint{Lat: 52.132633, Lon: 5.291266}},
	"NO": {Name: "Norway", Center: domain.GeoPoint{Lat: 60.472024, Lon: 8.468946}},
	"NP": {Name: "Nepal", Center: domain.GeoPoint{Lat: 28.0, Lon: 84.0}},
	"NR": {Name: "Nauru", Center: domain.GeoPoint{Lat: 0.0, Lon: 166.0}},
	"NU": {Name: "Niue", Center: domain.GeoPoint{Lat: -19.0, Lon: -169.0}},
	"NZ": {Name: "New Zealand", Center: domain.GeoPoint{Lat: -40.900557, Lon: 174.885971}},
	"OM": {Name: "Oman", Center: domain.GeoPoint{Lat: 21.0, Lon: 55.0}},
	"PA": {Name: "Panama", Center: domain.GeoPoint{Lat: 8.0, Lon: -80.0}},
	"PE": {Name: "Peru", Center: domain.GeoPoint{Lat: -9.0, Lon: -75.0}},
	"PF": {Name: "French Polynesia", Center: domain.GeoPoint{Lat: -17.0, Lon: -149.0}},
	"PG": {Name: "Papua New Guinea", Center: domain.GeoPoint{Lat: -6.0, Lon: 143.0}},
	"PH": {Name: "Philippines", Center: domain.GeoPoint{Lat: 12.879721, Lon: 121.774017}},
	"PK": {Name: "Pakistan", Center: domain.GeoPoint{Lat: 30.0, Lon: 69.0}},
	"PL": {Name: "Poland", Center: domain.GeoPoint{Lat: 51.919438, Lon: 19.145136}},
	"PM": {Name: "Saint Pierre and Miquelon", Center: domain.GeoPoint{Lat: 46.0, Lon: -56.0}},
	"PN": {Name: "Pitcairn", Center: domain.GeoPoint{Lat: -24.0, Lon: -127.0}},
	"PR": {Name: "Puerto Rico", Center: domain.GeoPoint{Lat: 18.0, Lon: -66.0}},
	"PS": {Name: "Palestine", Center: domain.GeoPoint{Lat: 31.0, Lon: 35.0}},
	"PT": {Name: "Portugal", Center: domain.GeoPoint{Lat: 39.399872, Lon: -8.224454}},
	"PW": {Name: "Palau", Center: domain.GeoPoint{Lat: 7.0, Lon: 134.0}},
	"PY": {Name: "Paraguay", Center: domain.GeoPoint{Lat: -23.0, Lon: -58.0}},
	"QA": {Name: "Qatar", Center: domain.GeoPoint{Lat: 25.0, Lon: 51.0}},
	"RE": {Name: "Réunion", Center: domain.GeoPoint{Lat: -21.0, Lon: 55.0}},
	"RO": {Name: "Romania", Center: domain.GeoPoint{Lat: 45.0, Lon: 24.0}},
	"RS": {Name: "Serbia", Center: domain.GeoPoint{Lat: 44.0, Lon: 21.0}},
	"RU": {Name: "Russian Federation", Center: domain.GeoPoint{Lat: 61.52401, Lon: 105.318756}},
	"RW": {Name: "Rwanda", Center: domain.GeoPoint{Lat: -1.0, Lon: 29.0}},
	"SA": {Name: "Saudi Arabia", Center: domain.GeoPoint{Lat: 23.885942, Lon: 45.079162}},
	"SB": {Name: "Solomon Islands", Center: domain.GeoPoint{Lat: -9.0, Lon: 160.0}},
	"SC": {Name: "Seychelles", Center: domain.GeoPoint{Lat: -4.0, Lon: 55.0}},
	"SD": {Name: "Sudan", Center: domain.GeoPoint{Lat: 12.0, Lon: 30.0}},
	"SE": {Name: "Sweden", Center: domain.GeoPoint{Lat: 60.128161, Lon: 18.643501}},
	"SG": {Name: "Singapore", Center: domain.GeoPoint{Lat: 1.352083, Lon: 103.819836}},
	"SH": {Name: "Saint Helena", Center: domain.GeoPoint{Lat: -24.0, Lon: -10.0}},
	"SI": {Name: "Slovenia", Center: domain.GeoPoint{Lat: 46.0, Lon: 14.0}},
	"SJ": {Name: "Svalbard and Jan Mayen", Center: domain.GeoPoint{Lat: 77.0, Lon: 23.0}},
	"SK": {Name: "Slovakia", Center: domain.GeoPoint{Lat: 48.0, Lon: 19.0}},
	"SL": {Name: "Sierra Leone", Center: domain.GeoPoint{Lat: 8.0, Lon: -11.0}},
	"SM": {Name: "San Marino", Center: domain.GeoPoint{Lat: 43.0, Lon: 12.0}},
	"SN": {Name: "Senegal", Center: domain.GeoPoint{Lat: 14.0, Lon: -14.0}},
	"SO": {Name: "Somalia", Center: domain.GeoPoint{Lat: 5.0, Lon: 46.0}},
	"SR": {Name: "Suriname", Center: domain.GeoPoint{Lat: 3.0, Lon: -56.0}},
	"SS": {Name: "South Sudan", Center: domain.GeoPoint{Lat: 4.0, Lon: 31.0}},
	"ST": {Name: "Sao Tome and Principe", Center: domain.GeoPoint{Lat: 0.0, Lon: 6.0}},
	"SV": {Name: "El Salvador", Center: domain.GeoPoint{Lat: 13.0, Lon: -88.0}},
	"SX": {Name: "Sint Maarten", Center: domain.GeoPoint{Lat: 18.0, Lon: -63.0}},
	"SY": {Name: "Syrian Arab Republic", Center: domain.GeoPoint{Lat: 34.0, Lon: 38.0}},
	"SZ": {Name: "Eswatini", Center: domain.GeoPoint{Lat: -26.0, Lon: 31.0}},
	"TC": {Name: "Turks and Caicos Islands", Center: domain.GeoPoint{Lat: 21.0, Lon: -71.0}},
	"TD": {Name: "Chad", Center: domain.GeoPoint{Lat: 15.0, Lon: 18.0}},
	"TF": {Name: "French Southern Territories", Center: domain.GeoPoint{Lat: -49.0, Lon: 69.0}},
	"TG": {Name: "Togo", Center: domain.GeoPoint{Lat: 8.0, Lon: 0.0}},
	"TH": {Name: "Thailand", Center: domain.GeoPoint{Lat: 15.870032, Lon: 100.992541}},
	"TJ": {Name: "Tajikistan", Center: domain.GeoPoint{Lat: 38.0, Lon: 71.0}},
	"TK": {Name: "Tokelau", Center: domain.GeoPoint{Lat: -8.0, Lon: -171.0}},
	"TL": {Name: "Timor-Leste", Center: domain.GeoPoint{Lat: -8.0, Lon: 125.0}},
	"TM": {Name: "Turkmenistan", Center: domain.GeoPoint{Lat: 38.0, Lon: 59.0}},
	"TN": {Name: "Tunisia", Center: domain.GeoPoint{Lat: 33.0, Lon: 9.0}},
	"TO": {Name: "Tonga", Center: domain.GeoPoint{Lat: -21.0, Lon: -175.0}},
	"TR": {Name: "Turkey", Center: domain.GeoPoint{Lat: 38.963745, Lon: 35.243322}},
	"TT": {Name: "Trinidad and Tobago", Center: domain.GeoPoint{Lat: 10.0, Lon: -61.0}},
	"TV": {Name: "Tuvalu", Center: domain.GeoPoint{Lat: -7.0, Lon: 177.0}},
	"TW": {Name: "Taiwan", Center: domain.GeoPoint{Lat: 23.69781, Lon: 120.960515}},
	"TZ": {Name: "Tanzania", Center: domain.GeoPoint{Lat: -6.0, Lon: 34.0}},
	"UA": {Name: "Ukraine", Center: domain.GeoPoint{Lat: 48.379433, Lon: 31.16558}},
	"UG": {Name: "Uganda", Center: domain.GeoPoint{Lat: 1.0, Lon: 32.0}},
	"US": {Name: "United States", Center: domain.GeoPoint{Lat: 37.09024, Lon: -95.712891}},
	"UY": {Name: "Uruguay", Center: domain.GeoPoint{Lat: -32.0, Lon: -55.0}},
	"UZ": {Name: "Uzbekistan", Center: domain.GeoPoint{Lat: 41.0, Lon: 64.0}},
	"VA": {Name: "Holy See", Center: domain.GeoPoint{Lat: 41.0, Lon: 12.0}},
	"VC": {Name: "Saint Vincent and the Grenadines", Center: domain.GeoPoint{Lat: 12.0, Lon: -61.0}},
	"VE": {Name: "Venezuela", Center: domain.GeoPoint{Lat: 6.0, Lon: -66.0}},
	"VG": {Name: "Virgin Islands (British)", Center: domain.GeoPoint{Lat: 18.0, Lon: -64.0}},
	"VI": {Name: "Virgin Islands (U.S.)", Center: domain.GeoPoint{Lat: 18.0, Lon: -64.0}},
	"VN": {Name: "Viet Nam", Center: domain.GeoPoint{Lat: 14.058324, Lon: 108.277199}},
	"VU": {Name: "Vanuatu", Center: domain.GeoPoint{Lat: -15.0, Lon: 166.0}},
	"WF": {Name: "Wallis and Futuna", Center: domain.GeoPoint{Lat: -13.0, Lon: -177.0}},
	"WS": {Name: "Samoa", Center: domain.GeoPoint{Lat: -13.0, Lon: -172.0}},
	"XK": {Name: "Kosovo", Center: domain.GeoPoint{Lat: 42.0, Lon: 20.0}},
	"YE": {Name: "Yemen", Center: domain.GeoPoint{Lat: 15.0, Lon: 48.0}},
	"YT": {Name: "Mayotte", Center: domain.GeoPoint{Lat: -12.0, Lon: 45.0}},
	"ZA": {Name: "South Africa", Center: domain.GeoPoint{Lat: -30.559482, Lon: 22.937506}},
	"ZM": {Name: "Zambia", Center: domain.GeoPoint{Lat: -13.0, Lon: 27.0}},
	"ZW": {Name: "Zimbabwe", Center: domain.GeoPoint{Lat: -19.0, Lon: 29.0}},
}
