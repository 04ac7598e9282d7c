package catalog

// Sample returns the catalog shipped with the app. Duplicate entries are intentional.
func Sample() *Catalog {
	return New(
		NewBook("Thinking in Bets", "Annie Duke", "Decision Making", true, 5, "thinkingInBets"),
		NewBook("Domain-Driven Design", "Eric Evans", "Software Engineering", false, 4, "domainDrivenDesign"),
		NewBook("Thinking in Bets", "Annie Duke", "Decision Making", true, 5, "thinkingInBets"),
		NewBook("Domain-Driven Design", "Eric Evans", "Software Engineering", false, 4, "domainDrivenDesign"),
		NewBook("Thinking in Bets", "Annie Duke", "Decision Making", true, 5, "thinkingInBets"),
		NewBook("Domain-Driven Design", "Eric Evans", "Software Engineering", false, 4, "domainDrivenDesign"),
		NewBook("Thinking in Bets", "Annie Duke", "Decision Making", true, 5, "thinkingInBets"),
		NewBook("Domain-Driven Design", "Eric Evans", "Software Engineering", false, 4, "domainDrivenDesign"),
		NewBook("Engenharia de Software Moderna", "Vários Autores", "Software Engineering", true, 3, "thinkingInBets"),
		NewBook("Arquitetura Limpa na Prática", "Otávio Lemos", "Software Architecture", false, 5, "domainDrivenDesign"),
		NewBook("The Hitchhiker's Guide to the Galaxy", "Douglas Adams", "Science Fiction", true, 5, "thinkingInBets"),
		NewBook("1984", "George Orwell", "Dystopian", false, 4, "domainDrivenDesign"),
		NewBook("To Kill a Mockingbird", "Harper Lee", "Classic", true, 5, "thinkingInBets"),
		NewBook("Dune", "Frank Herbert", "Science Fiction", true, 5, "domainDrivenDesign"),
		NewBook("Sapiens: A Brief History of Humankind", "Yuval Noah Harari", "History", false, 4, "thinkingInBets"),
		NewBook("Sapiens: A Brief History of Humankind", "Yuval Noah Harari", "History", false, 4, "domainDrivenDesign"),
	)
}
