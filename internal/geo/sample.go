package geo

// sampleStates is the small built-in dataset used when no other source loads.
var sampleStates = []State{
	{ID: "abia", Name: "Abia", LGAs: []LGA{
		{ID: "umuahia-north", Name: "Umuahia North", Wards: []Ward{{ID: "w1", Name: "Ibeku East I"}, {ID: "w2", Name: "Ibeku East II"}, {ID: "w3", Name: "Umuahia Urban I"}}},
		{ID: "aba-south", Name: "Aba South", Wards: []Ward{{ID: "w4", Name: "Eziukwu"}, {ID: "w5", Name: "Asa"}, {ID: "w6", Name: "Aba Town Hall"}}},
	}},
	{ID: "adamawa", Name: "Adamawa", LGAs: []LGA{
		{ID: "yola-north", Name: "Yola North", Wards: []Ward{{ID: "w7", Name: "Alkalawa"}, {ID: "w8", Name: "Doubeli"}, {ID: "w9", Name: "Jambutu"}}},
		{ID: "mubi-north", Name: "Mubi North", Wards: []Ward{{ID: "w10", Name: "Bahuli"}, {ID: "w11", Name: "Kolere"}, {ID: "w12", Name: "Yelwa"}}},
	}},
	{ID: "akwa-ibom", Name: "Akwa Ibom", LGAs: []LGA{
		{ID: "uyo", Name: "Uyo", Wards: []Ward{{ID: "w13", Name: "Uyo Urban I"}, {ID: "w14", Name: "Uyo Urban II"}, {ID: "w15", Name: "Uyo Urban III"}}},
		{ID: "etinan", Name: "Etinan", Wards: []Ward{{ID: "w16", Name: "Etinan Urban I"}, {ID: "w17", Name: "Etinan Urban II"}}},
	}},
	{ID: "anambra", Name: "Anambra", LGAs: []LGA{
		{ID: "awka-south", Name: "Awka South", Wards: []Ward{{ID: "w18", Name: "Awka I"}, {ID: "w19", Name: "Awka II"}, {ID: "w20", Name: "Awka III"}}},
		{ID: "onitsha-north", Name: "Onitsha North", Wards: []Ward{{ID: "w21", Name: "GRA"}, {ID: "w22", Name: "Inland Town I"}, {ID: "w23", Name: "Inland Town II"}}},
	}},
	{ID: "bauchi", Name: "Bauchi", LGAs: []LGA{
		{ID: "bauchi", Name: "Bauchi", Wards: []Ward{{ID: "w24", Name: "Bauchi Central"}, {ID: "w25", Name: "Dawaki"}, {ID: "w26", Name: "Gwallaga"}}},
		{ID: "toro", Name: "Toro", Wards: []Ward{{ID: "w27", Name: "Toro North"}, {ID: "w28", Name: "Toro South"}}},
	}},
	{ID: "bayelsa", Name: "Bayelsa", LGAs: []LGA{
		{ID: "yenagoa", Name: "Yenagoa", Wards: []Ward{{ID: "w29", Name: "Amassoma I"}, {ID: "w30", Name: "Amassoma II"}, {ID: "w31", Name: "Epie I"}}},
	}},
	{ID: "benue", Name: "Benue", LGAs: []LGA{
		{ID: "makurdi", Name: "Makurdi", Wards: []Ward{{ID: "w32", Name: "North Bank I"}, {ID: "w33", Name: "North Bank II"}, {ID: "w34", Name: "Modern Market"}}},
		{ID: "gboko", Name: "Gboko", Wards: []Ward{{ID: "w35", Name: "Gboko Central"}, {ID: "w36", Name: "Gboko East"}}},
	}},
	{ID: "borno", Name: "Borno", LGAs: []LGA{
		{ID: "maiduguri", Name: "Maiduguri", Wards: []Ward{{ID: "w37", Name: "Gwange I"}, {ID: "w38", Name: "Gwange II"}, {ID: "w39", Name: "Hausari"}}},
		{ID: "jere", Name: "Jere", Wards: []Ward{{ID: "w40", Name: "Bulumkutu"}, {ID: "w41", Name: "Mashamari"}}},
	}},
	{ID: "cross-river", Name: "Cross River", LGAs: []LGA{
		{ID: "calabar-municipality", Name: "Calabar Municipality", Wards: []Ward{{ID: "w42", Name: "I"}, {ID: "w43", Name: "II"}, {ID: "w44", Name: "III"}}},
	}},
	{ID: "delta", Name: "Delta", LGAs: []LGA{
		{ID: "warri-north", Name: "Warri North", Wards: []Ward{{ID: "w45", Name: "Koko"}, {ID: "w46", Name: "Ogheye"}}},
		{ID: "ughelli-north", Name: "Ughelli North", Wards: []Ward{{ID: "w47", Name: "Ughelli I"}, {ID: "w48", Name: "Ughelli II"}}},
	}},
	{ID: "ebonyi", Name: "Ebonyi", LGAs: []LGA{
		{ID: "abakaliki", Name: "Abakaliki", Wards: []Ward{{ID: "w49", Name: "Abakpa"}, {ID: "w50", Name: "Kpirikpiri"}, {ID: "w51", Name: "Ndieze"}}},
	}},
	{ID: "edo", Name: "Edo", LGAs: []LGA{
		{ID: "benin-city", Name: "Oredo (Benin City)", Wards: []Ward{{ID: "w52", Name: "GRA/Etete"}, {ID: "w53", Name: "New Benin I"}, {ID: "w54", Name: "New Benin II"}}},
	}},
	{ID: "ekiti", Name: "Ekiti", LGAs: []LGA{
		{ID: "ado-ekiti", Name: "Ado Ekiti", Wards: []Ward{{ID: "w55", Name: "Ado A"}, {ID: "w56", Name: "Ado B"}, {ID: "w57", Name: "Ado C"}}},
	}},
	{ID: "enugu", Name: "Enugu", LGAs: []LGA{
		{ID: "enugu-north", Name: "Enugu North", Wards: []Ward{{ID: "w58", Name: "Abakpa I"}, {ID: "w59", Name: "Abakpa II"}, {ID: "w60", Name: "Trans Ekulu"}}},
		{ID: "nsukka", Name: "Nsukka", Wards: []Ward{{ID: "w61", Name: "Nkpunano"}, {ID: "w62", Name: "Ihe"}, {ID: "w63", Name: "Owerre"}}},
	}},
	{ID: "fct", Name: "FCT (Abuja)", LGAs: []LGA{
		{ID: "abuja-municipal", Name: "Abuja Municipal", Wards: []Ward{{ID: "w64", Name: "Garki"}, {ID: "w65", Name: "Wuse"}, {ID: "w66", Name: "Maitama"}}},
		{ID: "bwari", Name: "Bwari", Wards: []Ward{{ID: "w67", Name: "Bwari Central"}, {ID: "w68", Name: "Kubwa"}}},
	}},
	{ID: "gombe", Name: "Gombe", LGAs: []LGA{
		{ID: "gombe", Name: "Gombe", Wards: []Ward{{ID: "w69", Name: "Bolari East"}, {ID: "w70", Name: "Bolari West"}, {ID: "w71", Name: "Pantami"}}},
	}},
	{ID: "imo", Name: "Imo", LGAs: []LGA{
		{ID: "owerri-urban", Name: "Owerri Urban", Wards: []Ward{{ID: "w72", Name: "Aladimma I"}, {ID: "w73", Name: "Aladimma II"}, {ID: "w74", Name: "New Owerri I"}}},
	}},
	{ID: "jigawa", Name: "Jigawa", LGAs: []LGA{
		{ID: "dutse", Name: "Dutse", Wards: []Ward{{ID: "w75", Name: "Dutse Central"}, {ID: "w76", Name: "Sakwaya"}}},
	}},
	{ID: "kaduna", Name: "Kaduna", LGAs: []LGA{
		{ID: "kaduna-north", Name: "Kaduna North", Wards: []Ward{{ID: "w77", Name: "Kawo"}, {ID: "w78", Name: "Hayin Banki"}, {ID: "w79", Name: "Ungwan Sanusi"}}},
		{ID: "chikun", Name: "Chikun", Wards: []Ward{{ID: "w80", Name: "Chikun"}, {ID: "w81", Name: "Kakau"}, {ID: "w82", Name: "Sabon Tasha"}}},
	}},
	{ID: "kano", Name: "Kano", LGAs: []LGA{
		{ID: "kano-municipal", Name: "Kano Municipal", Wards: []Ward{{ID: "w83", Name: "Dala"}, {ID: "w84", Name: "Gwale"}, {ID: "w85", Name: "Nassarawa"}}},
		{ID: "fagge", Name: "Fagge", Wards: []Ward{{ID: "w86", Name: "Fagge A"}, {ID: "w87", Name: "Fagge B"}, {ID: "w88", Name: "Sabon Gari East"}}},
	}},
	{ID: "katsina", Name: "Katsina", LGAs: []LGA{
		{ID: "katsina", Name: "Katsina", Wards: []Ward{{ID: "w89", Name: "Katsina Central"}, {ID: "w90", Name: "Dutsinma"}}},
	}},
	{ID: "kebbi", Name: "Kebbi", LGAs: []LGA{
		{ID: "birnin-kebbi", Name: "Birnin Kebbi", Wards: []Ward{{ID: "w91", Name: "Nassarawa I"}, {ID: "w92", Name: "Nassarawa II"}}},
	}},
	{ID: "kogi", Name: "Kogi", LGAs: []LGA{
		{ID: "lokoja", Name: "Lokoja", Wards: []Ward{{ID: "w93", Name: "Lokoja A"}, {ID: "w94", Name: "Lokoja B"}, {ID: "w95", Name: "Lokoja C"}}},
	}},
	{ID: "kwara", Name: "Kwara", LGAs: []LGA{
		{ID: "ilorin-west", Name: "Ilorin West", Wards: []Ward{{ID: "w96", Name: "Akanbi I"}, {ID: "w97", Name: "Akanbi II"}, {ID: "w98", Name: "Okaka I"}}},
	}},
	{ID: "lagos", Name: "Lagos", LGAs: []LGA{
		{ID: "ikeja", Name: "Ikeja", Wards: []Ward{{ID: "w99", Name: "Anifowoshe"}, {ID: "w100", Name: "Ojodu"}, {ID: "w101", Name: "Alausa"}}},
		{ID: "mainland", Name: "Lagos Mainland", Wards: []Ward{{ID: "w102", Name: "Yaba"}, {ID: "w103", Name: "Ebute Metta"}, {ID: "w104", Name: "Oyingbo"}}},
	}},
	{ID: "nasarawa", Name: "Nasarawa", LGAs: []LGA{
		{ID: "lafia", Name: "Lafia", Wards: []Ward{{ID: "w105", Name: "Lafia North"}, {ID: "w106", Name: "Lafia South"}}},
	}},
	{ID: "niger", Name: "Niger", LGAs: []LGA{
		{ID: "minna", Name: "Chanchaga (Minna)", Wards: []Ward{{ID: "w107", Name: "Minna Central"}, {ID: "w108", Name: "Bosso"}, {ID: "w109", Name: "Chanchaga"}}},
	}},
	{ID: "ogun", Name: "Ogun", LGAs: []LGA{
		{ID: "abeokuta-south", Name: "Abeokuta South", Wards: []Ward{{ID: "w110", Name: "Ake I"}, {ID: "w111", Name: "Ake II"}, {ID: "w112", Name: "Itoko"}}},
	}},
	{ID: "ondo", Name: "Ondo", LGAs: []LGA{
		{ID: "akure-south", Name: "Akure South", Wards: []Ward{{ID: "w113", Name: "Oda"}, {ID: "w114", Name: "Isinkan"}, {ID: "w115", Name: "Oba Ile"}}},
	}},
	{ID: "osun", Name: "Osun", LGAs: []LGA{
		{ID: "osogbo", Name: "Osogbo", Wards: []Ward{{ID: "w116", Name: "Egbedore"}, {ID: "w117", Name: "Ede North"}, {ID: "w118", Name: "Ejigbo"}}},
	}},
	{ID: "oyo", Name: "Oyo", LGAs: []LGA{
		{ID: "ibadan-north", Name: "Ibadan North", Wards: []Ward{{ID: "w119", Name: "Agodi"}, {ID: "w120", Name: "Yemetu"}, {ID: "w121", Name: "Oke-Ado"}}},
		{ID: "oyo-east", Name: "Oyo East", Wards: []Ward{{ID: "w122", Name: "Oyo Town I"}, {ID: "w123", Name: "Oyo Town II"}}},
	}},
	{ID: "plateau", Name: "Plateau", LGAs: []LGA{
		{ID: "jos-north", Name: "Jos North", Wards: []Ward{{ID: "w124", Name: "Naraguta A"}, {ID: "w125", Name: "Naraguta B"}, {ID: "w126", Name: "Tudun Wada"}}},
	}},
	{ID: "rivers", Name: "Rivers", LGAs: []LGA{
		{ID: "port-harcourt", Name: "Port Harcourt", Wards: []Ward{{ID: "w127", Name: "Diobu I"}, {ID: "w128", Name: "Diobu II"}, {ID: "w129", Name: "Trans Amadi"}}},
	}},
	{ID: "sokoto", Name: "Sokoto", LGAs: []LGA{
		{ID: "sokoto-north", Name: "Sokoto North", Wards: []Ward{{ID: "w130", Name: "Magajin Gari A"}, {ID: "w131", Name: "Magajin Gari B"}}},
	}},
	{ID: "taraba", Name: "Taraba", LGAs: []LGA{
		{ID: "jalingo", Name: "Jalingo", Wards: []Ward{{ID: "w132", Name: "Jalingo I"}, {ID: "w133", Name: "Jalingo II"}, {ID: "w134", Name: "Sintali"}}},
	}},
	{ID: "yobe", Name: "Yobe", LGAs: []LGA{
		{ID: "damaturu", Name: "Damaturu", Wards: []Ward{{ID: "w135", Name: "Damaturu Central"}, {ID: "w136", Name: "Pompomari"}}},
	}},
	{ID: "zamfara", Name: "Zamfara", LGAs: []LGA{
		{ID: "gusau", Name: "Gusau", Wards: []Ward{{ID: "w137", Name: "Gusau East"}, {ID: "w138", Name: "Gusau West"}}},
	}},
}
