package geo

// cities is the built-in gazetteer. Order matters: partial matches scan it front to back.
var cities = []city{
	{"mumbai", Coordinate{Lat: 19.0760, Lng: 72.8777}},
	{"delhi", Coordinate{Lat: 28.7041, Lng: 77.1025}},
	{"bangalore", Coordinate{Lat: 12.9716, Lng: 77.5946}},
	{"hyderabad", Coordinate{Lat: 17.3850, Lng: 78.4867}},
	{"chennai", Coordinate{Lat: 13.0827, Lng: 80.2707}},
	{"kolkata", Coordinate{Lat: 22.5726, Lng: 88.3639}},
	{"pune", Coordinate{Lat: 18.5204, Lng: 73.8567}},
	{"ahmedabad", Coordinate{Lat: 23.0225, Lng: 72.5714}},
	{"jaipur", Coordinate{Lat: 26.9124, Lng: 75.7873}},
	{"surat", Coordinate{Lat: 21.1702, Lng: 72.8311}},
	{"lucknow", Coordinate{Lat: 26.8467, Lng: 80.9462}},
	{"kanpur", Coordinate{Lat: 26.4499, Lng: 80.3319}},
	{"nagpur", Coordinate{Lat: 21.1458, Lng: 79.0882}},
	{"indore", Coordinate{Lat: 22.7196, Lng: 75.8577}},
	{"thane", Coordinate{Lat: 19.2183, Lng: 72.9781}},
	{"bhopal", Coordinate{Lat: 23.2599, Lng: 77.4126}},
	{"visakhapatnam", Coordinate{Lat: 17.6868, Lng: 83.2185}},
	{"patna", Coordinate{Lat: 25.5941, Lng: 85.1376}},
	{"vadodara", Coordinate{Lat: 22.3072, Lng: 73.1812}},
	{"ghaziabad", Coordinate{Lat: 28.6692, Lng: 77.4538}},
	{"ludhiana", Coordinate{Lat: 30.9010, Lng: 75.8573}},
	{"agra", Coordinate{Lat: 27.1767, Lng: 78.0081}},
	{"nashik", Coordinate{Lat: 19.9975, Lng: 73.7898}},
	{"faridabad", Coordinate{Lat: 28.4089, Lng: 77.3178}},
	{"meerut", Coordinate{Lat: 28.9845, Lng: 77.7064}},
	{"rajkot", Coordinate{Lat: 22.3039, Lng: 70.8022}},
	{"kalyan", Coordinate{Lat: 19.2433, Lng: 73.1355}},
	{"vasai", Coordinate{Lat: 19.4259, Lng: 72.8225}},
	{"vashi", Coordinate{Lat: 19.0760, Lng: 72.9986}},
	{"aurangabad", Coordinate{Lat: 19.8762, Lng: 75.3433}},
	{"noida", Coordinate{Lat: 28.5355, Lng: 77.3910}},
	{"solapur", Coordinate{Lat: 17.6599, Lng: 75.9064}},
	{"ranchi", Coordinate{Lat: 23.3441, Lng: 85.3096}},
	{"howrah", Coordinate{Lat: 22.5958, Lng: 88.2636}},
	{"coimbatore", Coordinate{Lat: 11.0168, Lng: 76.9558}},
	{"jabalpur", Coordinate{Lat: 23.1815, Lng: 79.9864}},
	{"gwalior", Coordinate{Lat: 26.2183, Lng: 78.1828}},
	{"vijayawada", Coordinate{Lat: 16.5062, Lng: 80.6480}},
	{"jodhpur", Coordinate{Lat: 26.2389, Lng: 73.0243}},
	{"madurai", Coordinate{Lat: 9.9252, Lng: 78.1198}},
	{"raipur", Coordinate{Lat: 21.2514, Lng: 81.6296}},
	{"kota", Coordinate{Lat: 25.2138, Lng: 75.8648}},
	{"guwahati", Coordinate{Lat: 26.1445, Lng: 91.7362}},
	{"chandigarh", Coordinate{Lat: 30.7333, Lng: 76.7794}},
	{"amritsar", Coordinate{Lat: 31.6340, Lng: 74.8723}},
	{"allahabad", Coordinate{Lat: 25.4358, Lng: 81.8463}},
	{"varanasi", Coordinate{Lat: 25.3176, Lng: 82.9739}},
	{"mysore", Coordinate{Lat: 12.2958, Lng: 76.6394}},
	{"bhubaneswar", Coordinate{Lat: 20.2961, Lng: 85.8245}},
	{"salem", Coordinate{Lat: 11.6643, Lng: 78.1460}},
	{"warangal", Coordinate{Lat: 17.9689, Lng: 79.5941}},
	{"guntur", Coordinate{Lat: 16.2991, Lng: 80.4575}},
	{"bhiwandi", Coordinate{Lat: 19.2969, Lng: 73.0629}},
	{"saharanpur", Coordinate{Lat: 29.9675, Lng: 77.5451}},
	{"gorakhpur", Coordinate{Lat: 26.7606, Lng: 83.3732}},
	{"bikaner", Coordinate{Lat: 28.0229, Lng: 73.3119}},
	{"amravati", Coordinate{Lat: 20.9374, Lng: 77.7796}},
	{"jamshedpur", Coordinate{Lat: 22.8046, Lng: 86.2029}},
	{"bhilai", Coordinate{Lat: 21.2094, Lng: 81.4285}},
	{"cuttack", Coordinate{Lat: 20.4625, Lng: 85.8830}},
	{"firozabad", Coordinate{Lat: 27.1591, Lng: 78.3958}},
	{"kochi", Coordinate{Lat: 9.9312, Lng: 76.2673}},
	{"nellore", Coordinate{Lat: 14.4426, Lng: 79.9865}},
	{"bhavnagar", Coordinate{Lat: 21.7645, Lng: 72.1519}},
	{"dehradun", Coordinate{Lat: 30.3165, Lng: 78.0322}},
	{"durgapur", Coordinate{Lat: 23.5204, Lng: 87.3119}},
	{"asansol", Coordinate{Lat: 23.6889, Lng: 86.9661}},
	{"rourkela", Coordinate{Lat: 22.2494, Lng: 84.8828}},
	{"nanded", Coordinate{Lat: 19.1383, Lng: 77.3210}},
	{"kolhapur", Coordinate{Lat: 16.7050, Lng: 74.2433}},
	{"ajmer", Coordinate{Lat: 26.4499, Lng: 74.6399}},
	{"akola", Coordinate{Lat: 20.7096, Lng: 77.0021}},
	{"gulbarga", Coordinate{Lat: 17.3297, Lng: 76.8343}},
	{"jamnagar", Coordinate{Lat: 22.4707, Lng: 70.0577}},
	{"udaipur", Coordinate{Lat: 24.5854, Lng: 73.7125}},
	{"maheshtala", Coordinate{Lat: 22.5086, Lng: 88.2532}},
	{"tiruchirappalli", Coordinate{Lat: 10.7905, Lng: 78.7047}},
	{"belgaum", Coordinate{Lat: 15.8497, Lng: 74.4977}},
	{"kurnool", Coordinate{Lat: 15.8281, Lng: 78.0373}},
	{"rajahmundry", Coordinate{Lat: 17.0005, Lng: 81.8040}},
	{"mangalore", Coordinate{Lat: 12.9716, Lng: 74.8631}},
	{"karnal", Coordinate{Lat: 29.6857, Lng: 76.9905}},
	{"tiruppur", Coordinate{Lat: 11.1085, Lng: 77.3411}},
	{"bathinda", Coordinate{Lat: 30.2110, Lng: 74.9455}},
	{"ratlam", Coordinate{Lat: 23.3343, Lng: 75.0376}},
	{"shivamogga", Coordinate{Lat: 13.9299, Lng: 75.5681}},
	{"rohtak", Coordinate{Lat: 28.8955, Lng: 76.6066}},
	{"korba", Coordinate{Lat: 22.3458, Lng: 82.6963}},
	{"bhilwara", Coordinate{Lat: 25.3463, Lng: 74.6364}},
	{"uzhavarkarai", Coordinate{Lat: 11.9416, Lng: 79.8083}},
	{"bellary", Coordinate{Lat: 15.1394, Lng: 76.9214}},
	{"tumkur", Coordinate{Lat: 13.3409, Lng: 77.1025}},
	{"gaya", Coordinate{Lat: 24.7914, Lng: 85.0002}},
	{"parbhani", Coordinate{Lat: 19.2686, Lng: 76.7708}},
	{"malegaon", Coordinate{Lat: 20.5609, Lng: 74.5250}},
	{"chapra", Coordinate{Lat: 25.7801, Lng: 84.7491}},
	{"jalna", Coordinate{Lat: 19.8413, Lng: 75.8860}},
	{"bhusawal", Coordinate{Lat: 21.0436, Lng: 75.7851}},
	{"ahmednagar", Coordinate{Lat: 19.0952, Lng: 74.7496}},
	{"shimla", Coordinate{Lat: 31.1048, Lng: 77.1734}},
	{"srinagar", Coordinate{Lat: 34.0837, Lng: 74.7973}},
	{"gangtok", Coordinate{Lat: 27.3389, Lng: 88.6065}},
	{"itanagar", Coordinate{Lat: 27.0844, Lng: 93.6053}},
	{"kohima", Coordinate{Lat: 25.6751, Lng: 94.1086}},
	{"imphal", Coordinate{Lat: 24.8170, Lng: 93.9368}},
	{"aizawl", Coordinate{Lat: 23.7307, Lng: 92.7173}},
	{"agartala", Coordinate{Lat: 23.8315, Lng: 91.2868}},
	{"shillong", Coordinate{Lat: 25.5788, Lng: 91.8933}},
	{"dispur", Coordinate{Lat: 26.1433, Lng: 91.7898}},
	{"panaji", Coordinate{Lat: 15.2993, Lng: 74.1240}},
	{"port blair", Coordinate{Lat: 11.6234, Lng: 92.7265}},
	{"kavaratti", Coordinate{Lat: 10.5593, Lng: 72.6358}},
	{"daman", Coordinate{Lat: 20.3974, Lng: 72.8328}},
	{"diu", Coordinate{Lat: 20.7144, Lng: 70.9874}},
	{"silvassa", Coordinate{Lat: 20.2762, Lng: 72.9707}},
	{"leh", Coordinate{Lat: 34.1526, Lng: 77.5771}},
	{"kargil", Coordinate{Lat: 34.5571, Lng: 76.1260}},
	{"new york", Coordinate{Lat: 40.7128, Lng: -74.0060}},
	{"nyc", Coordinate{Lat: 40.7128, Lng: -74.0060}},
	{"los angeles", Coordinate{Lat: 34.0522, Lng: -118.2437}},
	{"la", Coordinate{Lat: 34.0522, Lng: -118.2437}},
	{"chicago", Coordinate{Lat: 41.8781, Lng: -87.6298}},
	{"houston", Coordinate{Lat: 29.7604, Lng: -95.3698}},
	{"phoenix", Coordinate{Lat: 33.4484, Lng: -112.0740}},
	{"philadelphia", Coordinate{Lat: 39.9526, Lng: -75.1652}},
	{"san antonio", Coordinate{Lat: 29.4241, Lng: -98.4936}},
	{"san diego", Coordinate{Lat: 32.7157, Lng: -117.1611}},
	{"dallas", Coordinate{Lat: 32.7767, Lng: -96.7970}},
	{"san jose", Coordinate{Lat: 37.3382, Lng: -121.8863}},
	{"austin", Coordinate{Lat: 30.2672, Lng: -97.7431}},
	{"jacksonville", Coordinate{Lat: 30.3322, Lng: -81.6557}},
	{"fort worth", Coordinate{Lat: 32.7555, Lng: -97.3308}},
	{"columbus", Coordinate{Lat: 39.9612, Lng: -82.9988}},
	{"charlotte", Coordinate{Lat: 35.2271, Lng: -80.8431}},
	{"san francisco", Coordinate{Lat: 37.7749, Lng: -122.4194}},
	{"indianapolis", Coordinate{Lat: 39.7684, Lng: -86.1581}},
	{"seattle", Coordinate{Lat: 47.6062, Lng: -122.3321}},
	{"denver", Coordinate{Lat: 39.7392, Lng: -104.9903}},
	{"washington", Coordinate{Lat: 38.9072, Lng: -77.0369}},
	{"boston", Coordinate{Lat: 42.3601, Lng: -71.0589}},
	{"el paso", Coordinate{Lat: 31.7619, Lng: -106.4850}},
	{"nashville", Coordinate{Lat: 36.1627, Lng: -86.7816}},
	{"detroit", Coordinate{Lat: 42.3314, Lng: -83.0458}},
	{"oklahoma city", Coordinate{Lat: 35.4676, Lng: -97.5164}},
	{"portland", Coordinate{Lat: 45.5152, Lng: -122.6784}},
	{"las vegas", Coordinate{Lat: 36.1699, Lng: -115.1398}},
	{"memphis", Coordinate{Lat: 35.1495, Lng: -90.0490}},
	{"louisville", Coordinate{Lat: 38.2527, Lng: -85.7585}},
	{"baltimore", Coordinate{Lat: 39.2904, Lng: -76.6122}},
	{"milwaukee", Coordinate{Lat: 43.0389, Lng: -87.9065}},
	{"albuquerque", Coordinate{Lat: 35.0844, Lng: -106.6504}},
	{"tucson", Coordinate{Lat: 32.2226, Lng: -110.9747}},
	{"fresno", Coordinate{Lat: 36.7378, Lng: -119.7871}},
	{"sacramento", Coordinate{Lat: 38.5816, Lng: -121.4944}},
	{"atlanta", Coordinate{Lat: 33.7490, Lng: -84.3880}},
	{"kansas city", Coordinate{Lat: 39.0997, Lng: -94.5786}},
	{"long beach", Coordinate{Lat: 33.7701, Lng: -118.1937}},
	{"colorado springs", Coordinate{Lat: 38.8339, Lng: -104.8214}},
	{"miami", Coordinate{Lat: 25.7617, Lng: -80.1918}},
	{"raleigh", Coordinate{Lat: 35.7796, Lng: -78.6382}},
	{"omaha", Coordinate{Lat: 41.2565, Lng: -95.9345}},
	{"minneapolis", Coordinate{Lat: 44.9778, Lng: -93.2650}},
	{"tulsa", Coordinate{Lat: 36.1540, Lng: -95.9928}},
	{"cleveland", Coordinate{Lat: 41.4993, Lng: -81.6944}},
	{"wichita", Coordinate{Lat: 37.6872, Lng: -97.3301}},
	{"arlington", Coordinate{Lat: 32.7357, Lng: -97.1081}},
	{"new orleans", Coordinate{Lat: 29.9511, Lng: -90.0715}},
	{"bakersfield", Coordinate{Lat: 35.3733, Lng: -119.0187}},
	{"tampa", Coordinate{Lat: 27.9506, Lng: -82.4572}},
	{"honolulu", Coordinate{Lat: 21.3099, Lng: -157.8581}},
	{"anaheim", Coordinate{Lat: 33.8366, Lng: -117.9143}},
	{"aurora", Coordinate{Lat: 39.7294, Lng: -104.8319}},
	{"santa ana", Coordinate{Lat: 33.7455, Lng: -117.8677}},
	{"corpus christi", Coordinate{Lat: 27.8006, Lng: -97.3964}},
	{"riverside", Coordinate{Lat: 33.9533, Lng: -117.3962}},
	{"lexington", Coordinate{Lat: 38.0406, Lng: -84.5037}},
	{"stockton", Coordinate{Lat: 37.9577, Lng: -121.2908}},
	{"henderson", Coordinate{Lat: 36.0395, Lng: -114.9817}},
	{"saint paul", Coordinate{Lat: 44.9537, Lng: -93.0900}},
	{"st. paul", Coordinate{Lat: 44.9537, Lng: -93.0900}},
	{"st louis", Coordinate{Lat: 38.6270, Lng: -90.1994}},
	{"cincinnati", Coordinate{Lat: 39.1031, Lng: -84.5120}},
	{"pittsburgh", Coordinate{Lat: 40.4406, Lng: -79.9959}},
	{"anchorage", Coordinate{Lat: 61.2181, Lng: -149.9003}},
	{"greensboro", Coordinate{Lat: 36.0726, Lng: -79.7920}},
	{"plano", Coordinate{Lat: 33.0198, Lng: -96.6989}},
	{"newark", Coordinate{Lat: 40.7357, Lng: -74.1724}},
	{"lincoln", Coordinate{Lat: 40.8136, Lng: -96.7026}},
	{"orlando", Coordinate{Lat: 28.5383, Lng: -81.3792}},
	{"irvine", Coordinate{Lat: 33.6846, Lng: -117.8265}},
	{"durham", Coordinate{Lat: 35.9940, Lng: -78.8986}},
	{"chula vista", Coordinate{Lat: 32.6401, Lng: -117.0842}},
	{"toledo", Coordinate{Lat: 41.6528, Lng: -83.5379}},
	{"fort wayne", Coordinate{Lat: 41.0793, Lng: -85.1394}},
	{"st. petersburg", Coordinate{Lat: 27.7731, Lng: -82.6400}},
	{"laredo", Coordinate{Lat: 27.5064, Lng: -99.5075}},
	{"chandler", Coordinate{Lat: 33.3062, Lng: -111.8413}},
	{"norfolk", Coordinate{Lat: 36.8468, Lng: -76.2852}},
	{"garland", Coordinate{Lat: 32.9126, Lng: -96.6389}},
	{"madison", Coordinate{Lat: 43.0731, Lng: -89.4012}},
	{"glendale", Coordinate{Lat: 34.1425, Lng: -118.2551}},
	{"hialeah", Coordinate{Lat: 25.8576, Lng: -80.2781}},
	{"scottsdale", Coordinate{Lat: 33.4942, Lng: -111.9261}},
	{"irving", Coordinate{Lat: 32.8140, Lng: -96.9489}},
	{"fremont", Coordinate{Lat: 37.5485, Lng: -121.9886}},
	{"san bernardino", Coordinate{Lat: 34.1083, Lng: -117.2898}},
	{"boise", Coordinate{Lat: 43.6150, Lng: -116.2023}},
	{"birmingham", Coordinate{Lat: 33.5207, Lng: -86.8025}},
	{"rochester", Coordinate{Lat: 43.1566, Lng: -77.6088}},
	{"richmond", Coordinate{Lat: 37.5407, Lng: -77.4360}},
	{"spokane", Coordinate{Lat: 47.6588, Lng: -117.4260}},
	{"des moines", Coordinate{Lat: 41.5868, Lng: -93.6250}},
	{"montgomery", Coordinate{Lat: 32.3792, Lng: -86.3077}},
	{"modesto", Coordinate{Lat: 37.6391, Lng: -120.9969}},
	{"fayetteville", Coordinate{Lat: 35.0527, Lng: -78.8784}},
	{"tacoma", Coordinate{Lat: 47.2529, Lng: -122.4443}},
	{"shreveport", Coordinate{Lat: 32.5252, Lng: -93.7502}},
	{"fontana", Coordinate{Lat: 34.0922, Lng: -117.4350}},
	{"oxnard", Coordinate{Lat: 34.1975, Lng: -119.1771}},
	{"moreno valley", Coordinate{Lat: 33.9425, Lng: -117.2297}},
	{"frisco", Coordinate{Lat: 33.1507, Lng: -96.8236}},
	{"huntington beach", Coordinate{Lat: 33.6595, Lng: -118.0068}},
	{"yonkers", Coordinate{Lat: 40.9312, Lng: -73.8987}},
	{"lubbock", Coordinate{Lat: 33.5779, Lng: -101.8552}},
	{"akron", Coordinate{Lat: 41.0814, Lng: -81.5190}},
}
