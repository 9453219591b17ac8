// Package roster holds the externally curated supervisor roster. The list is
// fixed at deploy time and loaded as process-wide immutable state; it seeds
// faculty accounts and resolves legacy free-text supervisor references.
package roster

// OthersID is the sentinel entry id for "unspecified/external" supervisors.
// It is never resolved to an account.
const OthersID = "others"

// Entry is a single roster record with a stable external id.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
	Title       string `json:"title"`
}

// Supervisors is the static supervisor roster, ordered as curated.
var Supervisors = []Entry{
	{ID: "samuel.akakpo", Name: "Mr. Samuel Bewiadzi Akakpo", Email: "samuel.akakpo@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Mr."},
	{ID: "mercy.klugar", Name: "Dr. Mercy Klugar", Email: "mercy.klugar@uhas.edu.gh", Institution: "School of Allied Health Sciences", Title: "Dr."},
	{ID: "richard.awubomu", Name: "Dr. Richard Awubomu", Email: "richard.awubomu@uhas.edu.gh", Institution: "School of Medicine", Title: "Dr."},
	{ID: "innocent.akorli", Name: "Mr. Innocent Akorli", Email: "innocent.akorli@uhas.edu.gh", Institution: "School of Medicine", Title: "Mr."},
	{ID: "benjamin.amoakohene", Name: "Dr. Benjamin Amoakohene", Email: "benjamin.amoakohene@uhas.edu.gh", Institution: "School of Medicine", Title: "Dr."},
	{ID: "peter.agbezorlie", Name: "Mr. Peter Agbezorlie", Email: "peter.agbezorlie@uhas.edu.gh", Institution: "School of Allied Health Sciences", Title: "Mr."},
	{ID: "prince.kubi", Name: "Dr. Prince Appiah Kubi", Email: "prince.kubi@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "joyce.komesuor", Name: "Dr. Joyce Komesuor", Email: "joyce.komesuor@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Dr."},
	{ID: "mark.ananga", Name: "Dr. Mark Kwame Ananga", Email: "mark.ananga@uhas.edu.gh", Institution: "School of Medicine", Title: "Dr."},
	{ID: "kweku.appiagyei", Name: "Dr. Kweku Appiagyei", Email: "kweku.appiagyei@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "francis.agyei", Name: "Dr. Francis Agyei", Email: "francis.agyei@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Dr."},
	{ID: "awolu.adam", Name: "Dr. Awolu Adam", Email: "awolu.adam@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "geoffrey.asalu", Name: "Dr. Geoffrey Adebayo Asalu", Email: "geoffrey.asalu@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "norbert.amuna", Name: "Mr. Norbert Amuna", Email: "norbert.amuna@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Mr."},
	{ID: "millicent.yirenkyi", Name: "Ms. Millicent Boadiwaa Yirenkyi", Email: "millicent.yirenkyi@uhas.edu.gh", Institution: "School of Public Health", Title: "Ms."},
	{ID: "isiah.agorinya", Name: "Dr. Isiah Agorinya", Email: "isiah.agorinya@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "gideon.kye-duodu", Name: "Dr. Gideon Kye-Duodu", Email: "gideon.kye-duodu@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "forgive.norvivor", Name: "Ms. Forgive Norvivor", Email: "forgive.norvivor@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Ms."},
	{ID: "nathaniel.annang", Name: "Dr. Nathaniel Armah Annang", Email: "nathaniel.annang@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "mavis.kwabla", Name: "Dr. Mavis Pearl Kwabla", Email: "mavis.kwabla@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "gregory.amenuvegbe", Name: "Mr. Gregory Amenuvegbe", Email: "gregory.amenuvegbe@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Mr."},
	{ID: "george.wak", Name: "Dr. George Pokoanti Wak", Email: "george.wak@uhas.edu.gh", Institution: "School of Basic and Biomedical Sciences", Title: "Dr."},
	{ID: "hubert.amu", Name: "Dr. Hubert Amu", Email: "hubert.amu@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "mawuli.kushitor", Name: "Dr. Mawuli Kushitor", Email: "mawuli.kushitor@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Dr."},
	{ID: "pius.agbeviadey", Name: "Mr. Pius Agbeviadey", Email: "pius.agbeviadey@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Mr."},
	{ID: "martin.adjiuk", Name: "Mr. Martin Adjiuk", Email: "martin.adjiuk@uhas.edu.gh", Institution: "School of Basic and Biomedical Sciences", Title: "Mr."},
	{ID: "joyce.der", Name: "Dr. Joyce Der", Email: "joyce.der@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Dr."},
	{ID: "wisdom.takramah", Name: "Dr. Wisdom Takramah", Email: "wisdom.takramah@uhas.edu.gh", Institution: "School of Allied Health Sciences", Title: "Dr."},
	{ID: "sitsofe.gbogbo", Name: "Dr. Sitsofe Gbogbo", Email: "sitsofe.gbogbo@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "veronica.charles-unadike", Name: "Dr. Veronica Okwuchi Charles-Unadike", Email: "veronica.charles-unadike@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "emmanuel.manu", Name: "Dr. Emmanuel Manu", Email: "emmanuel.manu@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "mary.ampomah", Name: "Dr. Mary Ampomah", Email: "mary.ampomah@uhas.edu.gh", Institution: "School of Pharmacy", Title: "Dr."},
	{ID: "anthony.dongdem", Name: "Dr. Anthony Dongdem", Email: "anthony.dongdem@uhas.edu.gh", Institution: "School of Basic and Biomedical Sciences", Title: "Dr."},
	{ID: "eric.osei", Name: "Dr. Eric Osei", Email: "eric.osei@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "cosmos.todoko", Name: "Dr. Cosmos Todoko", Email: "cosmos.todoko@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: "clement.narh", Name: "Dr. Clement Narh", Email: "clement.narh@uhas.edu.gh", Institution: "School of Nursing and Midwifery", Title: "Dr."},
	{ID: "phyllis.addo", Name: "Dr. Phyllis Addo", Email: "phyllis.addo@uhas.edu.gh", Institution: "School of Basic and Biomedical Sciences", Title: "Dr."},
	{ID: "elvis.tarkang", Name: "Prof. Elvis Tarkang", Email: "elvis.tarkang@uhas.edu.gh", Institution: "School of Allied Health Sciences", Title: "Prof."},
	{ID: "livingstone.asem", Name: "Dr. Asem Livingstone", Email: "livingstone.asem@uhas.edu.gh", Institution: "School of Public Health", Title: "Dr."},
	{ID: OthersID, Name: "Others (Please specify in supervisor field)"},
}

// ByID returns the roster entry with the given id, or false if absent.
func ByID(id string) (Entry, bool) {
	for _, e := range Supervisors {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ByInstitution returns roster entries for one institution, preserving
// roster order. The sentinel entry is never included.
func ByInstitution(institution string) []Entry {
	var out []Entry
	for _, e := range Supervisors {
		if e.ID != OthersID && e.Institution == institution {
			out = append(out, e)
		}
	}
	return out
}
