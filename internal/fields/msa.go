package fields

var msaFields = []Field{
	{
		Name: "client_company_name",
		Queries: []string{
			"Identify the name of the client company or recipient of services in the contract. The service provider is Next Wealth, so the other party is the client.",
			"What is the name of the recipient company? Next Wealth is the service provider name so extract the recipient company name.",
		},
		CanonicalQuery: "What is the name of the client company or recipient of services in the contract?",
		Notes:          "1. Next Wealth is the service provider - extract the counterparty name\n2. Look for terms like 'Client', 'Company', or 'Customer' in definitions section",
		SchemaName:     "client_company_name_extraction",
		Kind:           ValueString,
		ValueDesc:      "The extracted client company name.",
	},
	{
		Name: "currency",
		Queries: []string{
			"What is amount mentioned in the contract? Is it in USD($) OR INR(₹)?",
			"What is the currency unit in USD($) or INR(₹) paid for an FTE per month?",
		},
		CanonicalQuery: "What is amount mentioned in the contract? Is it in USD($) OR INR(₹)?.",
		Notes:          "1. Return only 'USD' or 'INR' based on currency symbols ($/₹) or explicit mentions\n2. Ignore amounts - focus only on currency type",
		SchemaName:     "currency_type_extraction",
		Kind:           ValueString,
		ValueDesc:      "The currency type mentioned in the contract.",
	},
	{
		Name: "start_date",
		Queries: []string{
			"What is the start date or effective date of the Master Service Agreement (MSA) as mentioned in the document? Look for terms such as 'MSA Effective Date' or any specific commencement date",
			"What is the start date of the Master Service Agreement (MSA)?",
		},
		CanonicalQuery: "What is the start date or effective date of the Master Service Agreement (MSA) as mentioned in the document?. It may be written as effective from.",
		Notes:          "1. Validate against context - avoid unrelated dates\n2. Format as YYYY-MM-DD\n3. Return null if not found",
		SchemaName:     "start_date_extraction",
		Kind:           ValueString,
		ValueDesc:      "The date when the contract was signed. The date format should be YYYY-MM-DD",
	},
	{
		Name: "end_date",
		Queries: []string{
			"When does the term of the Master Service Agreement (MSA) end? Identify the exact end date or any expiration date mentioned in the document. Look for phrases such as 'continue to be in force until' or 'terminate'.",
			"What is the termination date of the MSA, including any specific conditions or notice period required for termination?",
		},
		CanonicalQuery: "When does the term of the Master Service Agreement (MSA) end? Identify the exact end date or any expiration date mentioned in the document.",
		Notes:          "1. Look for termination clauses and renewal terms\n2. Format as YYYY-MM-DD\n3. Return null for evergreen contracts",
		SchemaName:     "end_date_extraction",
		Kind:           ValueString,
		ValueDesc:      "The date when the contract ends. The date format should be YYYY-MM-DD",
	},
	{
		Name: "info_security",
		Queries: []string{
			"Is there any information security clause or requirement mentioned in the contract?",
			"Can you identify any clauses related to information security in the contract? If so, provide the details.",
		},
		CanonicalQuery: "Is there any information security clause or requirement mentioned in the contract?",
		Notes:          "1. Return 'Specified' only if explicit infosec obligations exist\n2. Look for data protection/compliance requirements\n3. Return 'Not Specified' if no infosec requirements exist",
		SchemaName:     "info_security_extraction",
		Kind:           ValueEnum,
		EnumValues:     []string{"Specified", "Not Specified"},
		ValueDesc:      "Whether the contract specifies information security obligations.",
	},
	{
		Name: "insurance_required",
		Queries: []string{
			"What are the details regarding insurance specified in the contract?",
			"What specific insurance policies and coverage amounts are required by the agreement?",
		},
		CanonicalQuery: "What are the specific insurance requirements including policy types, coverage amounts, and special conditions specified in the contract?",
		Notes:          "1. Extract multiple sub-fields: types, coverage amounts, cyber/workman compensation requirements\n2. Return 'null' for unspecified amounts\n3. Identify certificate of insurance requirements",
		SchemaName:     "insurance_field_extraction",
		Kind:           ValueInsurance,
	},
	{
		Name: "limitation_of_liability",
		Queries: []string{
			"What is the limit of liability mentioned in the contract?",
			"Can you identify the maximum liability amount specified in the contract terms?",
		},
		CanonicalQuery: "What is the limit of liability mentioned in the contract?",
		Notes:          "1. Check for liability caps in monetary terms\n2. Look for exclusion clauses\n3. Return 'Yes' even if liability is limited to fees paid\n 4. Return 'No' if no liability is specified",
		SchemaName:     "limitation_of_liability_extraction",
		Kind:           ValueString,
		ValueDesc:      "The limitation of liability terms extracted from the contract.",
	},
	{
		Name: "data_processing_agreement",
		Queries: []string{
			"Is there a Data Processing Agreement (DPA) mentioned in the contract? If yes, extract the relevant details.",
			"Can you identify any clauses related to Data Processing Agreement (DPA) in the contract? If so, provide the details.",
		},
		CanonicalQuery: "Is there a Data Processing Agreement (DPA) mentioned in the contract? If yes, extract the relevant details.",
		Notes:          "1. Verify if GDPR/compliance appendix exists\n2. Look for references to Exhibit/Attachment containing DPA\n 3. Just return 'Yes' or 'No' ",
		SchemaName:     "data_processing_agreement_extraction",
		Kind:           ValueEnum,
		EnumValues:     []string{"Yes", "No"},
		ValueDesc:      "Whether the contract contains a Data Processing Agreement.",
	},
}
