package haiku

// The built-in warning verses, shown one at a time above the deletion
// gate. Each is itself a small haiku.
var warningVerses = []string{
	"Hvad vil du fortrænge?\nHvad hvis det var begyndelse –\nikke en fejlskrift?",
	"Du trykker for slet.\nMen hvem var du, da du skrev?\nEr han stadig her?",
	"Hver linje du skrev\nbar en drøm i forklædning.\nEr du træt af den?",
	"Hvis du nu forlod\ndette fragment af din stemme –\nhvem vil finde den?",
	"Glemsel er let nok,\nmen har du givet mening\ntil det, du vil fjerne?",
	"Skriv ikke forbi.\nSkriv en grav for ordene –\nog gå den i møde.",
	"Den tavse cursor spør’:\nSkal jeg fortsætte alene?\nEller med din hånd?",
	"Et klik, og det går –\nmen før du lader det ske,\nsig hvad det var værd.",
	"Afsked uden ord\ner bare fortrængningens dans.\nGiv det rytme først.",
	"Du skrev det i hast –\nvil du også slette det\nsådan? Eller i haiku?",
	"Måske var det grimt.\nMen var det ikke også dig?\nÉn dag i dit liv.",
	"Dette var engang\net sted du tænkte frit i.\nGår du nu forbi?",
	"Du trykker på slet.\nMen vil du virkelig forlade\ndig selv i mørket?",
	"Lad ikke din frygt\nblive sletterens skygge.\nSkriv med åbne øjne.",
	"Hvis du kan digte,\nså kan du også forlade –\nmed hjertet åbent.",
	"Hvad flygter du fra?\nOrdene, du selv har valgt –\neller det, de ser?",
	"Du skrev dette ned.\nVar det ikke sandt engang?\nHvor blev det af dig?",
	"Hvis du sletter nu,\nhvem er det så, du forsøger\nat tie ihjel?",
	"Der var en grund før –\nen tanke, en følelse.\nHar den fortjent glemsel?",
	"Er du færdig nu?\nEller bare utålmodig\nefter at glemme?",
	"Du bærer en stemme\nind i mørket, uden spor.\nEr du sikker nu?",
	"Nogle ord skal væk.\nMen først må du fortælle\nhvad de gjorde ved dig.",
	"Du har set forbi –\nmen hvad var det, du så her?\nSkriv det i et vers.",
	"Slet kun det, du har\nmodet til at huske på\nnår tavsheden står.",
}
