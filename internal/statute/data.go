package statute

import "github.com/aumai/openjudge/internal/model"

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// Top IPC sections and their BNS equivalents, as of the
// Bharatiya Nyaya Sanhita 2023.
var ipcSections = []model.Section{
	{Code: model.CodeIPC, Number: "302", Title: "Murder", Description: "Punishment for murder. Whoever commits murder shall be punished with death or imprisonment for life, and shall also be liable to fine.", Punishment: strp("Death or life imprisonment and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "307", Title: "Attempt to murder", Description: "Whoever does any act with such intention or knowledge, and under such circumstances that, if he by that act caused death, he would be guilty of murder, shall be punished.", Punishment: strp("Imprisonment up to 10 years, or life if hurt caused"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "304", Title: "Culpable homicide not amounting to murder", Description: "Whoever commits culpable homicide not amounting to murder shall be punished.", Punishment: strp("Imprisonment for life or up to 10 years"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "376", Title: "Rape", Description: "Punishment for rape. Not less than 7 years which may extend to imprisonment for life.", Punishment: strp("Minimum 7 years, may extend to life imprisonment"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "379", Title: "Theft", Description: "Whoever commits theft shall be punished with imprisonment of either description for a term which may extend to three years, or with fine, or with both.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "380", Title: "Theft in dwelling house", Description: "Whoever commits theft in any building, tent or vessel, which building, tent or vessel is used as a human dwelling, shall be punished.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "392", Title: "Robbery", Description: "Whoever commits robbery shall be punished with rigorous imprisonment for a term which may extend to ten years, and shall also be liable to fine.", Punishment: strp("Rigorous imprisonment up to 10 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "395", Title: "Dacoity", Description: "Whoever commits dacoity shall be punished with imprisonment for life, or with rigorous imprisonment for a term which may extend to ten years.", Punishment: strp("Life imprisonment or rigorous imprisonment up to 10 years"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "420", Title: "Cheating and dishonestly inducing delivery of property", Description: "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property to any person shall be punished.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "406", Title: "Criminal breach of trust", Description: "Whoever commits criminal breach of trust shall be punished with imprisonment of either description for a term which may extend to three years.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "498A", Title: "Cruelty by husband or relatives", Description: "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty shall be punished.", Punishment: strp("Imprisonment up to 3 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "304B", Title: "Dowry death", Description: "Where the death of a woman is caused by burns or bodily injury in unnatural circumstances within 7 years of marriage and there is cruelty or harassment for dowry.", Punishment: strp("Minimum 7 years, may extend to life imprisonment"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "363", Title: "Kidnapping", Description: "Whoever kidnaps any person from India or from lawful guardianship shall be punished.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "354", Title: "Assault or criminal force on woman to outrage modesty", Description: "Whoever assaults or uses criminal force to any woman, intending to outrage or knowing it to be likely to outrage her modesty, shall be punished.", Punishment: strp("Minimum 1 year, may extend to 5 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "323", Title: "Voluntarily causing hurt", Description: "Whoever voluntarily causes hurt shall be punished with imprisonment for a term which may extend to one year, or with fine which may extend to one thousand rupees, or with both.", Punishment: strp("Imprisonment up to 1 year, or fine up to Rs 1000, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "325", Title: "Voluntarily causing grievous hurt", Description: "Whoever voluntarily causes grievous hurt shall be punished with imprisonment for a term which may extend to seven years, and shall also be liable to fine.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "341", Title: "Wrongful restraint", Description: "Whoever wrongfully restrains any person shall be punished with simple imprisonment for a term which may extend to one month, or with fine which may extend to five hundred rupees.", Punishment: strp("Simple imprisonment up to 1 month, or fine up to Rs 500"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "506", Title: "Criminal intimidation", Description: "Whoever commits the offence of criminal intimidation shall be punished with imprisonment of either description for a term which may extend to two years, or with fine, or with both.", Punishment: strp("Imprisonment up to 2 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "120B", Title: "Criminal conspiracy", Description: "Whoever is a party to a criminal conspiracy to commit an offence punishable with death, imprisonment for life, or rigorous imprisonment for a term of two years or upwards.", Punishment: strp("Same as for the offence conspired to commit")},
	{Code: model.CodeIPC, Number: "34", Title: "Acts done by several persons in furtherance of common intention", Description: "When a criminal act is done by several persons in furtherance of the common intention of all, each of such persons is liable for that act as if it were done by him alone.", Punishment: strp("Same punishment as individual offence")},
	{Code: model.CodeIPC, Number: "147", Title: "Rioting", Description: "Whoever is guilty of rioting shall be punished with imprisonment of either description for a term which may extend to two years, or with fine, or with both.", Punishment: strp("Imprisonment up to 2 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "153A", Title: "Promoting enmity between groups", Description: "Whoever promotes or attempts to promote, on grounds of religion, race, place of birth, residence, language, caste or community, disharmony or feelings of enmity between different groups.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "295A", Title: "Deliberate acts intended to outrage religious feelings", Description: "Deliberate and malicious acts intended to outrage religious feelings of any class by insulting its religion or religious beliefs.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "411", Title: "Dishonestly receiving stolen property", Description: "Whoever dishonestly receives or retains any stolen property, knowing or having reason to believe the same to be stolen property.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "193", Title: "Punishment for false evidence", Description: "Whoever intentionally gives false evidence in any stage of a judicial proceeding, or fabricates false evidence for the purpose of being used in any stage of a judicial proceeding.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeIPC, Number: "415", Title: "Cheating", Description: "Whoever, by deceiving any person, fraudulently or dishonestly induces the person so deceived to deliver any property to any person, or to consent that any person shall retain any property.", Punishment: strp("Imprisonment up to 1 year, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "447", Title: "Criminal trespass", Description: "Whoever commits criminal trespass shall be punished with imprisonment of either description for a term which may extend to three months, or with fine, or with both.", Punishment: strp("Imprisonment up to 3 months, or fine up to Rs 500, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "279", Title: "Rash driving or riding on a public way", Description: "Whoever drives any vehicle, or rides, on any public way in a manner so rash or negligent as to endanger human life, or to be likely to cause hurt or injury to any other person.", Punishment: strp("Imprisonment up to 6 months, or fine up to Rs 1000, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "304A", Title: "Causing death by negligence", Description: "Whoever causes the death of any person by doing any rash or negligent act not amounting to culpable homicide.", Punishment: strp("Imprisonment up to 2 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeIPC, Number: "509", Title: "Word or gesture intended to insult the modesty of a woman", Description: "Whoever intending to insult the modesty of any woman utters any word, makes any sound or gesture, or exhibits any object, intending that such word or sound shall be heard.", Punishment: strp("Simple imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
}

// BNS 2023 sections (Bharatiya Nyaya Sanhita, replaces the IPC).
var bnsSections = []model.Section{
	{Code: model.CodeBNS, Number: "103", Title: "Murder", Description: "Murder under BNS 2023. Same as IPC 302 but with updated provisions for organised crime and terrorism context.", Punishment: strp("Death or imprisonment for life and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "109", Title: "Attempt to murder", Description: "Corresponds to IPC 307. Attempt to commit murder.", Punishment: strp("Imprisonment up to 10 years, or life if hurt caused"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "105", Title: "Culpable homicide not amounting to murder", Description: "Corresponds to IPC 304.", Punishment: strp("Imprisonment for life or up to 10 years"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "64", Title: "Rape", Description: "Corresponds to IPC 376 with enhanced provisions for repeat offenders and public officials.", Punishment: strp("Minimum 10 years (from 7 under IPC), may extend to life"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "303", Title: "Theft", Description: "Corresponds to IPC 379. Theft provisions largely unchanged.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "305", Title: "Theft in dwelling house", Description: "Corresponds to IPC 380.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "309", Title: "Robbery", Description: "Corresponds to IPC 392.", Punishment: strp("Rigorous imprisonment up to 10 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "310", Title: "Dacoity", Description: "Corresponds to IPC 395.", Punishment: strp("Life imprisonment or rigorous imprisonment up to 10 years"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "318", Title: "Cheating", Description: "Corresponds to IPC 420/415 combined.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "316", Title: "Criminal breach of trust", Description: "Corresponds to IPC 406.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "85", Title: "Cruelty by husband or relatives", Description: "Corresponds to IPC 498A. Expanded to include mental cruelty.", Punishment: strp("Imprisonment up to 3 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "80", Title: "Dowry death", Description: "Corresponds to IPC 304B.", Punishment: strp("Minimum 7 years, may extend to life imprisonment"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "137", Title: "Kidnapping", Description: "Corresponds to IPC 363.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "74", Title: "Assault or criminal force on woman to outrage modesty", Description: "Corresponds to IPC 354 with additions.", Punishment: strp("Minimum 1 year, may extend to 5 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "115", Title: "Voluntarily causing hurt", Description: "Corresponds to IPC 323.", Punishment: strp("Imprisonment up to 1 year, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "117", Title: "Voluntarily causing grievous hurt", Description: "Corresponds to IPC 325.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "126", Title: "Wrongful restraint", Description: "Corresponds to IPC 341.", Punishment: strp("Simple imprisonment up to 1 month, or fine"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "351", Title: "Criminal intimidation", Description: "Corresponds to IPC 506.", Punishment: strp("Imprisonment up to 2 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "61", Title: "Criminal conspiracy", Description: "Corresponds to IPC 120B.", Punishment: strp("Same as for the offence conspired to commit")},
	{Code: model.CodeBNS, Number: "3(5)", Title: "Acts done in furtherance of common intention", Description: "Corresponds to IPC 34.", Punishment: strp("Same punishment as individual offence")},
	{Code: model.CodeBNS, Number: "191", Title: "Rioting", Description: "Corresponds to IPC 147.", Punishment: strp("Imprisonment up to 2 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "196", Title: "Promoting enmity between groups", Description: "Corresponds to IPC 153A.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "302", Title: "Dishonestly receiving stolen property", Description: "Corresponds to IPC 411.", Punishment: strp("Imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "229", Title: "Giving false evidence", Description: "Corresponds to IPC 193.", Punishment: strp("Imprisonment up to 7 years and fine"), Bailable: boolp(false)},
	{Code: model.CodeBNS, Number: "329", Title: "Criminal trespass", Description: "Corresponds to IPC 447.", Punishment: strp("Imprisonment up to 3 months, or fine"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "281", Title: "Rash driving", Description: "Corresponds to IPC 279.", Punishment: strp("Imprisonment up to 6 months, or fine, or both"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "106", Title: "Causing death by negligence", Description: "Corresponds to IPC 304A. Enhanced provisions for hit-and-run cases.", Punishment: strp("Imprisonment up to 5 years and fine (hit-and-run: up to 10 years)"), Bailable: boolp(true)},
	{Code: model.CodeBNS, Number: "79", Title: "Acts intended to insult modesty of woman", Description: "Corresponds to IPC 509.", Punishment: strp("Simple imprisonment up to 3 years, or fine, or both"), Bailable: boolp(true)},
}

// IPC to BNS transition mapping.
var ipcToBNSMappings = []model.Mapping{
	{OldCode: model.CodeIPC, OldSection: "302", NewCode: model.CodeBNS, NewSection: "103", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "307", NewCode: model.CodeBNS, NewSection: "109", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "304", NewCode: model.CodeBNS, NewSection: "105", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "376", NewCode: model.CodeBNS, NewSection: "64", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "379", NewCode: model.CodeBNS, NewSection: "303", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "380", NewCode: model.CodeBNS, NewSection: "305", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "392", NewCode: model.CodeBNS, NewSection: "309", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "395", NewCode: model.CodeBNS, NewSection: "310", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "420", NewCode: model.CodeBNS, NewSection: "318", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "406", NewCode: model.CodeBNS, NewSection: "316", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "498A", NewCode: model.CodeBNS, NewSection: "85", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "304B", NewCode: model.CodeBNS, NewSection: "80", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "363", NewCode: model.CodeBNS, NewSection: "137", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "354", NewCode: model.CodeBNS, NewSection: "74", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "323", NewCode: model.CodeBNS, NewSection: "115", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "325", NewCode: model.CodeBNS, NewSection: "117", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "341", NewCode: model.CodeBNS, NewSection: "126", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "506", NewCode: model.CodeBNS, NewSection: "351", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "120B", NewCode: model.CodeBNS, NewSection: "61", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "34", NewCode: model.CodeBNS, NewSection: "3(5)", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "147", NewCode: model.CodeBNS, NewSection: "191", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "153A", NewCode: model.CodeBNS, NewSection: "196", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "411", NewCode: model.CodeBNS, NewSection: "302", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "193", NewCode: model.CodeBNS, NewSection: "229", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "447", NewCode: model.CodeBNS, NewSection: "329", Status: model.StatusReplaced},
	{OldCode: model.CodeIPC, OldSection: "304A", NewCode: model.CodeBNS, NewSection: "106", Status: model.StatusAmended},
	{OldCode: model.CodeIPC, OldSection: "509", NewCode: model.CodeBNS, NewSection: "79", Status: model.StatusReplaced},
}
