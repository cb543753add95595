package fields

var sowFields = []Field{
	{
		Name: "client_company_name",
		Queries: []string{
			"Identify the name of the client company or recipient of services in the contract. The service provider is Next Wealth, so the other party is the client.",
			"What is the name of the recipient company? Next Wealth is the service provider name so extract the recipient company name.",
		},
		CanonicalQuery: "What is the name of the client company or recipient of services in the contract?",
		Notes:          "The service provider is Next Wealth, so the other party is the client. Next Wealth is the service provider name so it is not the client company name.",
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
		Notes:          "Your unit value should be in 'USD' OR 'INR'?",
		SchemaName:     "currency_type_extraction",
		Kind:           ValueString,
		ValueDesc:      "The currency type mentioned in the contract.",
	},
	{
		Name: "start_date",
		Queries: []string{
			"What is the start date or effective date of the Statement of Work (SOW) as mentioned in the document? Look for terms such as 'SOW Effective Date' or any specific commencement date",
			"This Statement of Work no. 1 (“SOW”), effective as of 31st July 2023, is by and between Infostretch Corporation (India) Private Limited",
		},
		CanonicalQuery: "What is the start date or effective date of the Statement of Work (SOW) as mentioned in the document?. It may be written as effective from.",
		Notes:          "1. Make sure you do not return some unrelated date as the effective start date.\n2. The format should be YYYY-MM-DD.\n3. If date is not specified, then return 'null'.",
		SchemaName:     "start_date_extraction",
		Kind:           ValueString,
		ValueDesc:      "The date when the contract was signed. The date format should be YYYY-MM-DD",
	},
	{
		Name: "end_date",
		Queries: []string{
			"When does the term of the Statement of Work (SOW) end? Identify the exact end date or any expiration date mentioned in the document. Look for phrases such as 'continue to be in force until' or 'terminate'.",
			"What is the termination date of the SOW, including any specific conditions or notice period required for termination?",
		},
		CanonicalQuery: "When does the term of the Statement of Work (SOW) end? Identify the exact end date or any expiration date mentioned in the document.",
		Notes:          "1. Make sure you do not return some unrelated date as the end date.\n2. The format should be YYYY-MM-DD.\n3. If date is not specified, then return 'null'.",
		SchemaName:     "end_date_extraction",
		Kind:           ValueString,
		ValueDesc:      "The date when the contract ends. The date format should be YYYY-MM-DD",
	},
	{
		Name: "cola",
		Queries: []string{
			"What is the cost of living adjustment (COLA) mentioned in the contract?",
		},
		CanonicalQuery: "What is the cost of living adjustment (COLA) mentioned in the contract?",
		Notes:          "Your response should be a numerical value. Its full form is Cost of Living Adjustment. It general in terms of percentage.",
		SchemaName:     "cola_extraction",
		Kind:           ValueNumber,
		ValueDesc:      "The Cost of Living Adjustment percentage value. Must be a number between 0 and 100.",
	},
	{
		Name: "credit_period",
		Queries: []string{
			"Invoice will be raised on the last day of the month and the payment to be made net 45 days of receiving invoice.",
			"Credit period is 45 days from the date of invoice. What is the credit period mentioned in the contract?",
		},
		CanonicalQuery: "Invoice will be raised on the last day of the month and the payment to be made net 45 days of receiving invoice. What is the credit period mentioned in the contract?",
		Notes:          "1. Your response should be a numerical value.\n2. It is the number of days after the invoice is raised.\n3. It is present in the payment terms section in this manner: 'Invoice will be raised on the last day of the month and the payment to be made net 45 days of receiving invoice.'",
		SchemaName:     "credit_period_extraction",
		Kind:           ValueNumber,
		ValueDesc:      "The credit period in days after the invoice is raised.",
	},
	{
		Name: "inclusive_or_exclusive_gst",
		Queries: []string{
			"What are the terms regarding the inclusion or exclusion of GST in the pricing structure, as detailed in the amendment or Statement of Work (SOW)?",
			"Can you identify any clauses in the amendment or SOW that specify whether applicable taxes, including GST, are included or excluded in the quoted service rates?",
			"Does the document clarify if the fees or charges mentioned are inclusive or exclusive of GST? Look for relevant sections in the SOW or amendment.",
		},
		CanonicalQuery: "What are the terms regarding the inclusion or exclusion of GST in the pricing structure, as detailed in the amendment or Statement of Work (SOW)?",
		Notes:          "1. Your response should be 'Inclusive' or 'Exclusive'.\n2. Only if the content is not sufficient to determine the answer, return 'Exclusive'. But never return NULL for this field.",
		SchemaName:     "gst_inclusion_extraction",
		Kind:           ValueEnum,
		EnumValues:     []string{"Inclusive", "Exclusive"},
		ValueDesc:      "Whether the quoted rates are inclusive or exclusive of GST.",
	},
	{
		Name: "sow_value",
		Queries: []string{
			"Can you extract the total monetary value or sow value specified for the services in the contract's Statement of Work (SOW) or any amendments?",
			"What is the final contract value as described in the SOW, including adjustments, if applicable, in the amendments?",
			"What is the total value of the Statement of Work (SOW), including all relevant costs or services, as outlined in the contract and amendments?",
		},
		CanonicalQuery: "Can you extract the total monetary value or sow value specified for the services in the contract's Statement of Work (SOW) or any amendments?",
		Notes:          "Your response should be a numerical value. It is the total monetary value or sow value specified for the services in the contract's Statement of Work (SOW) or any amendments.",
		SchemaName:     "sow_value_extraction",
		Kind:           ValueNumber,
		ValueDesc:      "The total monetary value of the Statement of Work.",
	},
	{
		Name: "sow_no",
		Queries: []string{
			"What is the Statement of Work (SOW) number mentioned in the document? Identify the unique identifier for the SOW, often found in the title or first section of the contract.",
			"Extract the Statement of Work Number (SOW No.) associated with the agreement or amendment, usually found at the beginning of the document.",
			"In which section is the Statement of Work number (SOW No.) mentioned? It's typically present in the opening paragraph or title of the agreement.",
		},
		CanonicalQuery: "What is the Statement of Work (SOW) number mentioned in the document?",
		Notes:          "1. Your response should be the SOW number.\n2. It is present in the title section of the contract.\n3. Do not mistakenly return the amendment number or some other number as the SOW number.",
		SchemaName:     "sow_no_extraction",
		Kind:           ValueString,
		ValueDesc:      "The Statement of Work (SOW) number from the contract.",
	},
	{
		Name: "type_of_billing",
		Queries: []string{
			"What is the billing or project type mentioned in this contract? Identify if the payment model is based on 'per task,' 'per unit,' or 'per transaction' (e.g., 'per SKU,' 'per batch') or if it's based on 'per FTE' (Full-Time Equivalent), such as 'per FTE per hour' or 'per FTE per month'.",
			"Does the contract mention a billing structure based on 'per transaction' (e.g., 'per run,' 'per batch,' 'per unit') or a 'per FTE' model (e.g., 'per FTE per hour,' 'per FTE per month')? Extract the relevant details indicating whether the project is transaction-based or FTE-based.",
			"Identify the project or billing type in the contract. Is it based on 'per task,' 'per item,' 'per transaction' pricing (e.g., 'per SKU,' 'per batch') or 'FTE-based' pricing (e.g., 'per FTE per month' or 'per FTE per hour')? Extract the section that describes the billing model.",
		},
		CanonicalQuery: "What is the billing or project type mentioned in this contract?",
		Notes:          "1. Your response should be 'Transaction Based' or 'FTE Based'.\n2. In case of 'Transaction Based', the unit type is 'per transaction' or 'per run' or 'per batch' or 'per unit' or 'per SKU' or 'per batch' etc will be mentioned.\n3. In case of 'FTE Based', the unit type is 'per FTE' will be mentioned.",
		SchemaName:     "billing_type_extraction",
		Kind:           ValueEnum,
		EnumValues:     []string{"Transaction Based", "FTE Based"},
		ValueDesc:      "The type of billing model used. Must be either 'Transaction Based' or 'FTE Based'.",
	},
	{
		Name: "po_number",
		Queries: []string{
			"What is the Purchase Order (PO) number mentioned in the document? Look for fields labeled as 'PURCHASE ORDER #,' 'PO NUMBER,' or 'PURCHASE ORDER', typically accompanied by order dates or other related information.",
			"Can you extract the PO number from the contract? It might be listed under terms like 'PURCHASE ORDER #,' 'PO NUMBER,' or a similar identifier, often followed by a date or other order details.",
			"Identify the Purchase Order (PO) number in the contract. It could appear as 'PURCHASE ORDER #,' 'PO NUMBER,' or related terms and may be located alongside fields like 'ORDER DATE' or 'PAYMENT TERMS.'",
		},
		CanonicalQuery: "What is the Purchase Order (PO) number mentioned in the document?",
		Notes:          "1. Your response should be the PO number.\n2. Do not mistakenly return the amendment number or some other number as the PO number.",
		SchemaName:     "po_number_extraction",
		Kind:           ValueString,
		ValueDesc:      "The Purchase Order (PO) number from the contract.",
	},
	{
		Name: "amendment_no",
		Queries: []string{
			"What is the Amendment Number mentioned in the document? Look for terms like 'Amendment #,' 'AMENDMENT NO,' or similar phrases, which typically appear alongside the Statement of Work Number or related contract details.",
			"Can you identify the Amendment Number in the contract? It may be found as 'Amendment #,' 'AMENDMENT NO,' or other variations, often associated with a Statement of Work Number or contract value adjustments.",
			"Extract the Amendment Number from the document. It might be indicated as 'Amendment #,' 'AMENDMENT NO,' or relevant terms and is usually linked to contract changes or the Statement of Work Number.",
		},
		CanonicalQuery: "What is the Amendment Number mentioned in the document? Your response should be the Amendment Number.",
		Notes:          "1. Your response should be the Amendment Number.\n2. Do not mistakenly return the SOW number or some other number as the amendment number.",
		SchemaName:     "amendment_number_extraction",
		Kind:           ValueString,
		ValueDesc:      "The amendment number from the contract.",
	},
	{
		Name: "billing_unit_type_and_rate_cost",
		Queries: []string{
			"What is the unit type mentioned for billing in this contract? Look for terms like 'per FTE', 'per bag', 'per transaction' or per something. Your response should be the relevant unit type along with the cost or rate.",
			"Can you identify the unit type and cost or rate for billing in the contract? Look for terms like 'per FTE', 'per bag', 'per transaction' or per something and the associated cost or rate.",
			"Identify the unit type and cost or rate for billing in the contract. Is it 'per FTE' or 'per bag' or 'per transaction' or per something and the associated cost or rate? Extract the relevant details indicating the billing model and its associated cost or rate.",
		},
		CanonicalQuery: "What is the unit type mentioned for billing in this contract? Look for terms like 'per FTE', 'per bag', 'per transaction' or per something along with cost associated with it.",
		Notes:          "1. Your response should be the relevant unit type along with the cost or rate.\n2. The unit type is the value mentioned after the word 'per'.\n3. The cost or rate is the value mentioned after the unit type.\n4. If there are more than one unit type and cost or rate, then return them in the following manner: 'per sample - 1000, per item - 5000', etc.",
		SchemaName:     "billing_unit_rate_extraction",
		Kind:           ValueBillingRates,
		ValueDesc:      "Mapping of billing units to their corresponding rates",
	},
	{
		Name: "particular_role_rate",
		Queries: []string{
			"What is the rate for particular role mentioned in the contract? For example, 'What is the rate for Associates mentioned in the contract?' or 'What is the rate for Senior Associates mentioned in the contract?' or 'What is the rate for Team Lead or QA mentioned in the contract?' etc.",
			"Identify the rate for a specific role mentioned in the contract. For example, 'What is the rate for Associates mentioned in the contract?' or 'What is the rate for Senior Associates mentioned in the contract?' or 'What is the rate for Team Lead or QA mentioned in the contract?' etc.",
			"Extract the rate for a particular role from the contract. For example, 'What is the rate for Associates mentioned in the contract?' or 'What is the rate for Senior Associates mentioned in the contract?' or 'What is the rate for Team Lead or QA mentioned in the contract?' etc.",
		},
		CanonicalQuery: "What is the rate for particular role mentioned in the contract? For example, 'What is the rate for Associates mentioned in the contract?' or 'What is the rate for Senior Associates mentioned in the contract?' or 'What is the rate for Team Lead or QA mentioned in the contract?' etc.",
		Notes:          "1. Your response should be the rate for the particular role mentioned in the contract.\n2. The rate is the value mentioned after the word 'per'.\n3. If there are more than one rate, then return them in the following manner: 'Associate - 1000, Senior Associate - 5000', etc.",
		SchemaName:     "role_rate_extraction",
		Kind:           ValueRoleRates,
		ValueDesc:      "Mapping of roles such as Manager, Associate Manager, etc to their corresponding rates",
	},
}
